package health

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/models"
)

type VaxAddCmd struct {
	Vaccine      string `arg:"" help:"Vaccine name (freeform; run 'pawkeep vax suggest' for common ones)."`
	Administered string `help:"Date administered (YYYY-MM-DD). Defaults to today."`
	Due          string `help:"Next due date (YYYY-MM-DD)."`
	By           string `help:"Administering vet or clinic."`
	Notes        string `help:"Notes."`
}

func (c *VaxAddCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	administered := time.Now()
	if c.Administered != "" {
		administered, err = cli.ParseDate(c.Administered)
		if err != nil {
			return err
		}
	}

	record := models.VaccinationRecord{
		ID:               uuid.New().String(),
		PetID:            pet.ID,
		VaccineName:      c.Vaccine,
		DateAdministered: administered,
		AdministeredBy:   c.By,
		Notes:            c.Notes,
	}

	if c.Due != "" {
		due, err := cli.ParseDate(c.Due)
		if err != nil {
			return err
		}
		record.NextDueDate = &due
	}

	if err := record.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddVaccination(record); err != nil {
		return err
	}

	fmt.Printf("Recorded %s vaccination for %s (ID: %s)\n", record.VaccineName, pet.Name, record.ID)
	return nil
}

type VaxListCmd struct{}

func (c *VaxListCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	records, err := ctx.Store.GetVaccinationsForPet(pet.ID)
	if err != nil {
		return fmt.Errorf("failed to get vaccination records: %w", err)
	}
	if len(records) == 0 {
		fmt.Printf("No vaccination records for %s\n", pet.Name)
		return nil
	}

	now := time.Now()
	var dueSoon []models.VaccinationRecord
	for _, record := range records {
		if record.DueSoon(now) {
			dueSoon = append(dueSoon, record)
		}
	}

	if len(dueSoon) > 0 {
		fmt.Println("Due soon:")
		for _, record := range dueSoon {
			fmt.Printf("  ! %s due %s\n", record.VaccineName, record.NextDueDate.Format(constants.DateFormat))
		}
		fmt.Println()
	}

	fmt.Printf("Vaccination history for %s:\n", pet.Name)
	for _, record := range records {
		line := fmt.Sprintf("  %s - administered %s",
			record.VaccineName, record.DateAdministered.Format(constants.DateFormat))
		if record.NextDueDate != nil {
			line += fmt.Sprintf(", next due %s", record.NextDueDate.Format(constants.DateFormat))
		}
		if record.AdministeredBy != "" {
			line += fmt.Sprintf(" (by %s)", record.AdministeredBy)
		}
		fmt.Println(line)
		if record.Notes != "" {
			fmt.Printf("      Notes: %s\n", record.Notes)
		}
	}
	return nil
}

type VaxEditCmd struct {
	ID      string `arg:"" help:"Vaccination record ID."`
	Vaccine string `help:"New vaccine name."`
	Due     string `help:"New next due date (YYYY-MM-DD), or 'none' to clear."`
	By      string `help:"New administering vet or clinic."`
	Notes   string `help:"New notes."`
}

func (c *VaxEditCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Store.GetAllVaccinations()
	if err != nil {
		return err
	}

	for _, record := range records {
		if record.ID != c.ID {
			continue
		}

		if c.Vaccine != "" {
			record.VaccineName = c.Vaccine
		}
		if c.By != "" {
			record.AdministeredBy = c.By
		}
		if c.Notes != "" {
			record.Notes = c.Notes
		}
		if c.Due != "" {
			if strings.EqualFold(c.Due, "none") {
				record.NextDueDate = nil
			} else {
				due, err := cli.ParseDate(c.Due)
				if err != nil {
					return err
				}
				record.NextDueDate = &due
			}
		}

		if err := record.Validate(); err != nil {
			return err
		}
		if err := ctx.Store.UpdateVaccination(record); err != nil {
			return err
		}
		fmt.Println("Updated vaccination record")
		return nil
	}
	return fmt.Errorf("vaccination record not found: %s", c.ID)
}

type VaxDeleteCmd struct {
	ID string `arg:"" help:"Vaccination record ID to delete."`
}

func (c *VaxDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteVaccination(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted vaccination record %s\n", c.ID)
	return nil
}

type VaxSuggestCmd struct{}

func (c *VaxSuggestCmd) Run(ctx *cli.Context) error {
	fmt.Println("Common vaccines:")
	for _, vaccine := range constants.CommonVaccines {
		fmt.Printf("  %s\n", vaccine)
	}
	return nil
}
