package models

import (
	"fmt"
	"time"
)

// WeightEntry is a single weight measurement for a pet, in pounds.
type WeightEntry struct {
	ID     string    `json:"id"`
	PetID  string    `json:"pet_id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Notes  string    `json:"notes"`
}

func (w *WeightEntry) Validate() error {
	if w.PetID == "" {
		return fmt.Errorf("weight entry must belong to a pet")
	}
	if w.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	return nil
}
