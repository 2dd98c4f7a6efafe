package sqlite

import "fmt"

func (s *Store) GetVisitTasks(petID string) (map[string][]string, error) {
	tasks := make(map[string][]string)
	if petID == "" {
		return tasks, nil
	}

	rows, err := s.db.Query(`
		SELECT date, text FROM visit_tasks
		WHERE pet_id = ? ORDER BY date, position`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var date, text string
		if err := rows.Scan(&date, &text); err != nil {
			return nil, err
		}
		tasks[date] = append(tasks[date], text)
	}
	return tasks, rows.Err()
}

func (s *Store) AddVisitTask(petID, date, text string) error {
	if petID == "" {
		return fmt.Errorf("visit task must belong to a pet")
	}

	var pos int
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(position), 0) + 1 FROM visit_tasks
		WHERE pet_id = ? AND date = ?`, petID, date).Scan(&pos)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO visit_tasks (pet_id, date, position, text)
		VALUES (?, ?, ?, ?)`, petID, date, pos, text)
	return err
}

// positionAt maps a zero-based task index to the stored position value,
// which may be sparse after deletions.
func (s *Store) positionAt(petID, date string, index int) (int, error) {
	rows, err := s.db.Query(`
		SELECT position FROM visit_tasks
		WHERE pet_id = ? AND date = ? ORDER BY position`, petID, date)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var pos int
		if err := rows.Scan(&pos); err != nil {
			return 0, err
		}
		if i == index {
			return pos, nil
		}
		i++
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("no task at position %d for %s", index, date)
}

func (s *Store) EditVisitTask(petID, date string, index int, text string) error {
	pos, err := s.positionAt(petID, date, index)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		UPDATE visit_tasks SET text = ?
		WHERE pet_id = ? AND date = ? AND position = ?`, text, petID, date, pos)
	return err
}

func (s *Store) DeleteVisitTask(petID, date string, index int) error {
	pos, err := s.positionAt(petID, date, index)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		DELETE FROM visit_tasks
		WHERE pet_id = ? AND date = ? AND position = ?`, petID, date, pos)
	return err
}

func (s *Store) DeleteVisitTasksForPet(petID string) error {
	_, err := s.db.Exec("DELETE FROM visit_tasks WHERE pet_id = ?", petID)
	return err
}
