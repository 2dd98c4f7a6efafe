package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/pawkeep/pawkeep/internal/logger"
	"github.com/pawkeep/pawkeep/internal/models"
)

func (s *Store) GetAllPets() ([]models.Pet, error) {
	rows, err := s.db.Query(`
		SELECT id, name, breed, age, image, created_at
		FROM pets ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pets []models.Pet
	for rows.Next() {
		var p models.Pet
		var createdAt string
		var image []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Breed, &p.Age, &image, &createdAt); err != nil {
			return nil, err
		}
		p.Image = image
		p.CreatedAt = parseTime(createdAt)
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

func (s *Store) AddPet(pet models.Pet) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	pos, err := nextPosition(tx, "pets")
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO pets (id, name, breed, age, image, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		pet.ID, pet.Name, pet.Breed, pet.Age, pet.Image, formatTime(pet.CreatedAt), pos)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	// First pet added becomes the selected pet
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM pets").Scan(&count); err != nil {
		_ = tx.Rollback()
		return err
	}
	if count == 1 {
		if _, err := tx.Exec("UPDATE selected_pet SET pet_id = ? WHERE id = 1", pet.ID); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) UpdatePet(pet models.Pet) error {
	res, err := s.db.Exec(`
		UPDATE pets SET name = ?, breed = ?, age = ?, image = ?
		WHERE id = ?`,
		pet.Name, pet.Breed, pet.Age, pet.Image, pet.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		logger.Warn("UpdatePet: pet not found, nothing to do", "id", pet.ID)
	}
	return nil
}

// DeletePet removes the pet, clears the selected pointer when it matches,
// and cascades to every pet-owned collection in one transaction.
func (s *Store) DeletePet(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmts := []string{
		"DELETE FROM pets WHERE id = ?",
		"DELETE FROM photos WHERE pet_id = ?",
		"DELETE FROM vaccination_records WHERE pet_id = ?",
		"DELETE FROM medications WHERE pet_id = ?",
		"DELETE FROM weight_entries WHERE pet_id = ?",
		"DELETE FROM visit_tasks WHERE pet_id = ?",
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt, id); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := tx.Exec("UPDATE selected_pet SET pet_id = '' WHERE id = 1 AND pet_id = ?", id); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (s *Store) GetSelectedPet() (models.Pet, bool, error) {
	var petID string
	if err := s.db.QueryRow("SELECT pet_id FROM selected_pet WHERE id = 1").Scan(&petID); err != nil {
		return models.Pet{}, false, err
	}
	if petID == "" {
		return models.Pet{}, false, nil
	}

	row := s.db.QueryRow(`
		SELECT id, name, breed, age, image, created_at
		FROM pets WHERE id = ?`, petID)

	var p models.Pet
	var createdAt string
	var image []byte
	err := row.Scan(&p.ID, &p.Name, &p.Breed, &p.Age, &image, &createdAt)
	if err == sql.ErrNoRows {
		// Dangling pointer, resolves to no selection
		return models.Pet{}, false, nil
	}
	if err != nil {
		return models.Pet{}, false, err
	}
	p.Image = image
	p.CreatedAt = parseTime(createdAt)
	return p, true, nil
}

func (s *Store) SelectPet(id string) error {
	res, err := s.db.Exec("UPDATE selected_pet SET pet_id = ? WHERE id = 1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("selected pet pointer row is missing")
	}
	return nil
}
