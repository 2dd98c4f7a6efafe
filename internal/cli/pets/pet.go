package pets

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/models"
)

type PetAddCmd struct {
	Name  string `arg:"" help:"Pet name."`
	Breed string `short:"b" help:"Breed."`
	Age   string `short:"a" help:"Age (freeform, e.g. '3' or 'puppy')."`
	Image string `short:"i" help:"Path to a profile image file." type:"existingfile"`
}

func (c *PetAddCmd) Run(ctx *cli.Context) error {
	pet := models.Pet{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Breed:     c.Breed,
		Age:       c.Age,
		CreatedAt: time.Now(),
	}

	if c.Image != "" {
		data, err := os.ReadFile(c.Image)
		if err != nil {
			return fmt.Errorf("failed to read image file: %w", err)
		}
		pet.Image = data
	}

	if err := pet.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddPet(pet); err != nil {
		return err
	}

	fmt.Printf("Added pet: %s (ID: %s)\n", pet.Name, pet.ID)

	if selected, ok, _ := ctx.Store.GetSelectedPet(); ok && selected.ID == pet.ID {
		fmt.Printf("%s is now the selected pet\n", pet.Name)
	}
	return nil
}

type PetListCmd struct {
	ShowIDs bool `help:"Show pet IDs." name:"show-ids"`
}

func (c *PetListCmd) Run(ctx *cli.Context) error {
	pets, err := ctx.Store.GetAllPets()
	if err != nil {
		return fmt.Errorf("failed to get pets: %w", err)
	}
	if len(pets) == 0 {
		fmt.Println("No pets found. Add one with 'pawkeep pet add'.")
		return nil
	}

	selected, hasSelected, err := ctx.Store.GetSelectedPet()
	if err != nil {
		return err
	}

	fmt.Println("Pets:")
	for _, pet := range pets {
		marker := " "
		if hasSelected && pet.ID == selected.ID {
			marker = "*"
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", pet.ID)
		}

		desc := pet.Breed
		if pet.Age != "" {
			if desc != "" {
				desc += " - "
			}
			desc += pet.Age
		}
		if desc == "" {
			desc = "no details"
		}

		fmt.Printf("  %s %s%s (%s)\n", marker, pet.Name, idStr, desc)
	}
	return nil
}

type PetSelectCmd struct {
	ID string `arg:"" help:"Pet ID to select."`
}

func (c *PetSelectCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.SelectPet(c.ID); err != nil {
		return err
	}

	if pet, ok, err := ctx.Store.GetSelectedPet(); err == nil && ok {
		fmt.Printf("Selected pet: %s\n", pet.Name)
	} else {
		fmt.Printf("Selected pet id %s (no matching pet profile found)\n", c.ID)
	}
	return nil
}

type PetDeleteCmd struct {
	ID string `arg:"" help:"Pet ID to delete."`
}

func (c *PetDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeletePet(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted pet %s and all of its records\n", c.ID)
	return nil
}

type PetSetImageCmd struct {
	ID    string `arg:"" help:"Pet ID."`
	Image string `arg:"" help:"Path to the new profile image file." type:"existingfile"`
}

func (c *PetSetImageCmd) Run(ctx *cli.Context) error {
	pets, err := ctx.Store.GetAllPets()
	if err != nil {
		return err
	}

	for _, pet := range pets {
		if pet.ID == c.ID {
			data, err := os.ReadFile(c.Image)
			if err != nil {
				return fmt.Errorf("failed to read image file: %w", err)
			}
			pet.Image = data
			if err := ctx.Store.UpdatePet(pet); err != nil {
				return err
			}
			fmt.Printf("Updated profile image for %s\n", pet.Name)
			return nil
		}
	}

	return fmt.Errorf("pet not found: %s", c.ID)
}
