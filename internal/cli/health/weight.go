package health

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/models"
)

type WeightAddCmd struct {
	Weight float64 `arg:"" help:"Weight value."`
	Date   string  `help:"Measurement date (YYYY-MM-DD). Defaults to today."`
	Notes  string  `help:"Notes."`
}

func (c *WeightAddCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	date := time.Now()
	if c.Date != "" {
		date, err = cli.ParseDate(c.Date)
		if err != nil {
			return err
		}
	}

	entry := models.WeightEntry{
		ID:     uuid.New().String(),
		PetID:  pet.ID,
		Date:   date,
		Weight: c.Weight,
		Notes:  c.Notes,
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.AddWeightEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Recorded weight %.1f for %s on %s\n", entry.Weight, pet.Name, entry.Date.Format(constants.DateFormat))
	return nil
}

type WeightListCmd struct{}

func (c *WeightListCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	entries, err := ctx.Store.GetWeightEntriesForPet(pet.ID)
	if err != nil {
		return fmt.Errorf("failed to get weight entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No weight entries for %s\n", pet.Name)
		return nil
	}

	fmt.Printf("Weight history for %s:\n", pet.Name)
	var prev float64
	for i, entry := range entries {
		line := fmt.Sprintf("  %s  %.1f", entry.Date.Format(constants.DateFormat), entry.Weight)
		if i > 0 {
			delta := entry.Weight - prev
			if delta != 0 {
				line += fmt.Sprintf(" (%+.1f)", delta)
			}
		}
		if entry.Notes != "" {
			line += fmt.Sprintf("  %s", entry.Notes)
		}
		fmt.Println(line)
		prev = entry.Weight
	}
	return nil
}

type WeightDeleteCmd struct {
	ID string `arg:"" help:"Weight entry ID to delete."`
}

func (c *WeightDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteWeightEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted weight entry %s\n", c.ID)
	return nil
}
