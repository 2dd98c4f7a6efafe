package sqlite

import (
	"fmt"

	"github.com/pawkeep/pawkeep/internal/logger"
	"github.com/pawkeep/pawkeep/internal/models"
)

func (s *Store) GetAppointments(completed bool) ([]models.Appointment, error) {
	rows, err := s.db.Query(`
		SELECT id, text, date, completed FROM appointments
		WHERE completed = ? ORDER BY position`, completed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []models.Appointment
	for rows.Next() {
		var a models.Appointment
		var date string
		if err := rows.Scan(&a.ID, &a.Text, &date, &a.Completed); err != nil {
			return nil, err
		}
		a.Date = parseTime(date)
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (s *Store) AddAppointment(appt models.Appointment) error {
	pos, err := nextPosition(s.db, "appointments")
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO appointments (id, text, date, completed, position)
		VALUES (?, ?, ?, ?, ?)`,
		appt.ID, appt.Text, formatTime(appt.Date), appt.Completed, pos)
	return err
}

func (s *Store) UpdateAppointment(appt models.Appointment) error {
	res, err := s.db.Exec(`
		UPDATE appointments SET text = ?, date = ?, completed = ? WHERE id = ?`,
		appt.Text, formatTime(appt.Date), appt.Completed, appt.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		logger.Warn("UpdateAppointment: appointment not found, nothing to do", "id", appt.ID)
	}
	return nil
}

func (s *Store) CompleteAppointment(id string) error {
	res, err := s.db.Exec("UPDATE appointments SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("appointment not found: %s", id)
	}
	return nil
}

func (s *Store) DeleteAppointment(id string) error {
	_, err := s.db.Exec("DELETE FROM appointments WHERE id = ?", id)
	return err
}
