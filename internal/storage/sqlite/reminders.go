package sqlite

import (
	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/models"
)

func (s *Store) GetReminders() ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, title, anchor, recurrence, created_at
		FROM scheduled_reminders ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		var anchor, createdAt, recurrence string
		if err := rows.Scan(&r.ID, &r.Title, &anchor, &recurrence, &createdAt); err != nil {
			return nil, err
		}
		r.Anchor = parseTime(anchor)
		r.CreatedAt = parseTime(createdAt)
		r.Recurrence = constants.RecurrenceKind(recurrence)
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *Store) AddReminder(reminder models.Reminder) error {
	pos, err := nextPosition(s.db, "scheduled_reminders")
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO scheduled_reminders (id, title, anchor, recurrence, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?)`,
		reminder.ID, reminder.Title, formatTime(reminder.Anchor),
		string(reminder.Recurrence), formatTime(reminder.CreatedAt), pos)
	return err
}

func (s *Store) DeleteReminder(id string) error {
	_, err := s.db.Exec("DELETE FROM scheduled_reminders WHERE id = ?", id)
	return err
}
