package models

import (
	"fmt"
	"strings"
	"time"
)

// Appointment is a free-text appointment note. Appointments are not tied to
// a pet; they live in two lists, upcoming and completed.
type Appointment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

func (a *Appointment) Validate() error {
	if strings.TrimSpace(a.Text) == "" {
		return fmt.Errorf("appointment text cannot be empty")
	}
	return nil
}
