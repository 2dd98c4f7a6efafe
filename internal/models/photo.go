package models

import (
	"fmt"
	"time"
)

// Photo is a gallery image owned by a pet. Caption may be empty.
type Photo struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
	Image     []byte    `json:"image"`
}

func (p *Photo) Validate() error {
	if p.PetID == "" {
		return fmt.Errorf("photo must belong to a pet")
	}
	if len(p.Image) == 0 {
		return fmt.Errorf("photo image data cannot be empty")
	}
	return nil
}
