package health

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/models"
)

type MedAddCmd struct {
	Name     string `arg:"" help:"Medication name."`
	Duration string `short:"d" help:"Duration or regimen, e.g. '2 weeks' or 'ongoing'."`
}

func (c *MedAddCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	med := models.Medication{
		ID:       uuid.New().String(),
		PetID:    pet.ID,
		Name:     c.Name,
		Duration: c.Duration,
	}
	if err := med.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.AddMedication(med); err != nil {
		return err
	}

	fmt.Printf("Added medication %s for %s (ID: %s)\n", med.Name, pet.Name, med.ID)
	return nil
}

type MedListCmd struct{}

func (c *MedListCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	meds, err := ctx.Store.GetMedicationsForPet(pet.ID)
	if err != nil {
		return fmt.Errorf("failed to get medications: %w", err)
	}
	if len(meds) == 0 {
		fmt.Printf("No medications for %s\n", pet.Name)
		return nil
	}

	fmt.Printf("Medications for %s:\n", pet.Name)
	for _, med := range meds {
		if med.Duration != "" {
			fmt.Printf("  %s (%s)\n", med.Name, med.Duration)
		} else {
			fmt.Printf("  %s\n", med.Name)
		}
	}
	return nil
}

type MedEditCmd struct {
	ID       string `arg:"" help:"Medication ID."`
	Name     string `help:"New medication name."`
	Duration string `short:"d" help:"New duration."`
}

func (c *MedEditCmd) Run(ctx *cli.Context) error {
	meds, err := ctx.Store.GetAllMedications()
	if err != nil {
		return err
	}

	for _, med := range meds {
		if med.ID != c.ID {
			continue
		}
		if c.Name != "" {
			med.Name = c.Name
		}
		if c.Duration != "" {
			med.Duration = c.Duration
		}
		if err := med.Validate(); err != nil {
			return err
		}
		if err := ctx.Store.UpdateMedication(med); err != nil {
			return err
		}
		fmt.Println("Updated medication")
		return nil
	}
	return fmt.Errorf("medication not found: %s", c.ID)
}

type MedDeleteCmd struct {
	ID string `arg:"" help:"Medication ID to delete."`
}

func (c *MedDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteMedication(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted medication %s\n", c.ID)
	return nil
}
