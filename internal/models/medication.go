package models

import (
	"fmt"
	"strings"
)

// Medication is an ongoing or completed course of medication for a pet.
// Duration is freeform text ("2 weeks", "until finished").
type Medication struct {
	ID       string `json:"id"`
	PetID    string `json:"pet_id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

func (m *Medication) Validate() error {
	if m.PetID == "" {
		return fmt.Errorf("medication must belong to a pet")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("medication name cannot be empty")
	}
	return nil
}
