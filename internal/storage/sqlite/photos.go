package sqlite

import (
	"github.com/pawkeep/pawkeep/internal/logger"
	"github.com/pawkeep/pawkeep/internal/models"
)

func (s *Store) scanPhotos(query string, args ...any) ([]models.Photo, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var p models.Photo
		var createdAt string
		if err := rows.Scan(&p.ID, &p.PetID, &p.Caption, &createdAt, &p.Image); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(createdAt)
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (s *Store) GetAllPhotos() ([]models.Photo, error) {
	return s.scanPhotos(`
		SELECT id, pet_id, caption, created_at, image
		FROM photos ORDER BY position`)
}

func (s *Store) GetPhotosForPet(petID string) ([]models.Photo, error) {
	if petID == "" {
		return nil, nil
	}
	return s.scanPhotos(`
		SELECT id, pet_id, caption, created_at, image
		FROM photos WHERE pet_id = ? ORDER BY position`, petID)
}

func (s *Store) AddPhoto(photo models.Photo) error {
	pos, err := nextPosition(s.db, "photos")
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO photos (id, pet_id, caption, created_at, image, position)
		VALUES (?, ?, ?, ?, ?, ?)`,
		photo.ID, photo.PetID, photo.Caption, formatTime(photo.CreatedAt), photo.Image, pos)
	return err
}

func (s *Store) UpdatePhoto(photo models.Photo) error {
	res, err := s.db.Exec(`
		UPDATE photos SET pet_id = ?, caption = ?, image = ?
		WHERE id = ?`,
		photo.PetID, photo.Caption, photo.Image, photo.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		logger.Warn("UpdatePhoto: photo not found, nothing to do", "id", photo.ID)
	}
	return nil
}

func (s *Store) DeletePhoto(id string) error {
	_, err := s.db.Exec("DELETE FROM photos WHERE id = ?", id)
	return err
}

func (s *Store) DeletePhotosForPet(petID string) error {
	_, err := s.db.Exec("DELETE FROM photos WHERE pet_id = ?", petID)
	return err
}
