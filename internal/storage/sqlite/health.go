package sqlite

import (
	"database/sql"

	"github.com/pawkeep/pawkeep/internal/logger"
	"github.com/pawkeep/pawkeep/internal/models"
)

// Vaccination records

func (s *Store) scanVaccinations(query string, args ...any) ([]models.VaccinationRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.VaccinationRecord
	for rows.Next() {
		var v models.VaccinationRecord
		var administered string
		var nextDue sql.NullString
		if err := rows.Scan(&v.ID, &v.PetID, &v.VaccineName, &administered, &nextDue, &v.AdministeredBy, &v.Notes); err != nil {
			return nil, err
		}
		v.DateAdministered = parseTime(administered)
		if nextDue.Valid {
			due := parseTime(nextDue.String)
			v.NextDueDate = &due
		}
		records = append(records, v)
	}
	return records, rows.Err()
}

func (s *Store) GetAllVaccinations() ([]models.VaccinationRecord, error) {
	return s.scanVaccinations(`
		SELECT id, pet_id, vaccine_name, date_administered, next_due_date, administered_by, notes
		FROM vaccination_records ORDER BY position`)
}

func (s *Store) GetVaccinationsForPet(petID string) ([]models.VaccinationRecord, error) {
	if petID == "" {
		return nil, nil
	}
	// History is shown newest administered first
	return s.scanVaccinations(`
		SELECT id, pet_id, vaccine_name, date_administered, next_due_date, administered_by, notes
		FROM vaccination_records WHERE pet_id = ? ORDER BY date_administered DESC`, petID)
}

func (s *Store) AddVaccination(record models.VaccinationRecord) error {
	pos, err := nextPosition(s.db, "vaccination_records")
	if err != nil {
		return err
	}

	var nextDue any
	if record.NextDueDate != nil {
		nextDue = formatTime(*record.NextDueDate)
	}

	_, err = s.db.Exec(`
		INSERT INTO vaccination_records (id, pet_id, vaccine_name, date_administered, next_due_date, administered_by, notes, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.PetID, record.VaccineName, formatTime(record.DateAdministered),
		nextDue, record.AdministeredBy, record.Notes, pos)
	return err
}

func (s *Store) UpdateVaccination(record models.VaccinationRecord) error {
	var nextDue any
	if record.NextDueDate != nil {
		nextDue = formatTime(*record.NextDueDate)
	}

	res, err := s.db.Exec(`
		UPDATE vaccination_records
		SET vaccine_name = ?, date_administered = ?, next_due_date = ?, administered_by = ?, notes = ?
		WHERE id = ?`,
		record.VaccineName, formatTime(record.DateAdministered), nextDue,
		record.AdministeredBy, record.Notes, record.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		logger.Warn("UpdateVaccination: record not found, nothing to do", "id", record.ID)
	}
	return nil
}

func (s *Store) DeleteVaccination(id string) error {
	_, err := s.db.Exec("DELETE FROM vaccination_records WHERE id = ?", id)
	return err
}

func (s *Store) DeleteVaccinationsForPet(petID string) error {
	_, err := s.db.Exec("DELETE FROM vaccination_records WHERE pet_id = ?", petID)
	return err
}

// Medications

func (s *Store) scanMedications(query string, args ...any) ([]models.Medication, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meds []models.Medication
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(&m.ID, &m.PetID, &m.Name, &m.Duration); err != nil {
			return nil, err
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}

func (s *Store) GetAllMedications() ([]models.Medication, error) {
	return s.scanMedications(`
		SELECT id, pet_id, name, duration
		FROM medications ORDER BY position`)
}

func (s *Store) GetMedicationsForPet(petID string) ([]models.Medication, error) {
	if petID == "" {
		return nil, nil
	}
	return s.scanMedications(`
		SELECT id, pet_id, name, duration
		FROM medications WHERE pet_id = ? ORDER BY position`, petID)
}

func (s *Store) AddMedication(med models.Medication) error {
	pos, err := nextPosition(s.db, "medications")
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO medications (id, pet_id, name, duration, position)
		VALUES (?, ?, ?, ?, ?)`,
		med.ID, med.PetID, med.Name, med.Duration, pos)
	return err
}

func (s *Store) UpdateMedication(med models.Medication) error {
	res, err := s.db.Exec(`
		UPDATE medications SET name = ?, duration = ? WHERE id = ?`,
		med.Name, med.Duration, med.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		logger.Warn("UpdateMedication: medication not found, nothing to do", "id", med.ID)
	}
	return nil
}

func (s *Store) DeleteMedication(id string) error {
	_, err := s.db.Exec("DELETE FROM medications WHERE id = ?", id)
	return err
}

func (s *Store) DeleteMedicationsForPet(petID string) error {
	_, err := s.db.Exec("DELETE FROM medications WHERE pet_id = ?", petID)
	return err
}

// Weight entries

func (s *Store) scanWeightEntries(query string, args ...any) ([]models.WeightEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var w models.WeightEntry
		var date string
		if err := rows.Scan(&w.ID, &w.PetID, &date, &w.Weight, &w.Notes); err != nil {
			return nil, err
		}
		w.Date = parseTime(date)
		entries = append(entries, w)
	}
	return entries, rows.Err()
}

func (s *Store) GetAllWeightEntries() ([]models.WeightEntry, error) {
	return s.scanWeightEntries(`
		SELECT id, pet_id, date, weight, notes
		FROM weight_entries ORDER BY position`)
}

func (s *Store) GetWeightEntriesForPet(petID string) ([]models.WeightEntry, error) {
	if petID == "" {
		return nil, nil
	}
	return s.scanWeightEntries(`
		SELECT id, pet_id, date, weight, notes
		FROM weight_entries WHERE pet_id = ? ORDER BY position`, petID)
}

func (s *Store) AddWeightEntry(entry models.WeightEntry) error {
	pos, err := nextPosition(s.db, "weight_entries")
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO weight_entries (id, pet_id, date, weight, notes, position)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.PetID, formatTime(entry.Date), entry.Weight, entry.Notes, pos)
	return err
}

func (s *Store) UpdateWeightEntry(entry models.WeightEntry) error {
	res, err := s.db.Exec(`
		UPDATE weight_entries SET date = ?, weight = ?, notes = ? WHERE id = ?`,
		formatTime(entry.Date), entry.Weight, entry.Notes, entry.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		logger.Warn("UpdateWeightEntry: entry not found, nothing to do", "id", entry.ID)
	}
	return nil
}

func (s *Store) DeleteWeightEntry(id string) error {
	_, err := s.db.Exec("DELETE FROM weight_entries WHERE id = ?", id)
	return err
}

func (s *Store) DeleteWeightEntriesForPet(petID string) error {
	_, err := s.db.Exec("DELETE FROM weight_entries WHERE pet_id = ?", petID)
	return err
}
