package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/pawkeep/pawkeep/internal/constants"
)

// VaccinationRecord tracks a single administered vaccine for a pet, with an
// optional next-due date for boosters.
type VaccinationRecord struct {
	ID               string     `json:"id"`
	PetID            string     `json:"pet_id"`
	VaccineName      string     `json:"vaccine_name"`
	DateAdministered time.Time  `json:"date_administered"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
	AdministeredBy   string     `json:"administered_by"`
	Notes            string     `json:"notes"`
}

func (v *VaccinationRecord) Validate() error {
	if v.PetID == "" {
		return fmt.Errorf("vaccination record must belong to a pet")
	}
	if strings.TrimSpace(v.VaccineName) == "" {
		return fmt.Errorf("vaccine name cannot be empty")
	}
	if v.NextDueDate != nil && v.NextDueDate.Before(v.DateAdministered) {
		return fmt.Errorf("next due date cannot be before the administered date")
	}
	return nil
}

// DueSoon reports whether the record's next-due date falls within the
// due-soon window after now. Records with no due date, or already overdue
// records, are not "due soon".
func (v *VaccinationRecord) DueSoon(now time.Time) bool {
	if v.NextDueDate == nil {
		return false
	}
	due := *v.NextDueDate
	return due.After(now) && due.Before(now.Add(constants.DueSoonWindow))
}
