package models

import (
	"fmt"
	"strings"
	"time"
)

// Pet is a single pet profile. Age is freeform text ("3", "3 years",
// "puppy") rather than a number, matching what owners actually type.
type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       string    `json:"age"`
	Image     []byte    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Pet) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("pet name cannot be empty")
	}
	return nil
}
