package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/storage"
	"github.com/pawkeep/pawkeep/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// If force flag is provided, delete existing database
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close before deleting to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized pawkeep storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if strings.HasSuffix(sourcePath, ".json") {
		sourceStore = storage.NewJSONStore(sourcePath)
	} else {
		sourceStore = sqlite.NewStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating pets...")
	pets, err := sourceStore.GetAllPets()
	if err != nil {
		return fmt.Errorf("failed to get pets from source: %w", err)
	}
	for _, pet := range pets {
		if err := ctx.Store.AddPet(pet); err != nil {
			return fmt.Errorf("failed to add pet %s: %w", pet.ID, err)
		}
	}
	fmt.Printf("    Migrated %d pets\n", len(pets))

	// Carry over the selection rather than letting the first migrated pet win
	if selected, ok, err := sourceStore.GetSelectedPet(); err != nil {
		return fmt.Errorf("failed to get selected pet from source: %w", err)
	} else if ok {
		if err := ctx.Store.SelectPet(selected.ID); err != nil {
			return fmt.Errorf("failed to select pet %s: %w", selected.ID, err)
		}
	}

	fmt.Println("  Migrating photos...")
	photos, err := sourceStore.GetAllPhotos()
	if err != nil {
		return fmt.Errorf("failed to get photos from source: %w", err)
	}
	for _, photo := range photos {
		if err := ctx.Store.AddPhoto(photo); err != nil {
			return fmt.Errorf("failed to add photo %s: %w", photo.ID, err)
		}
	}
	fmt.Printf("    Migrated %d photos\n", len(photos))

	fmt.Println("  Migrating vaccination records...")
	vaccinations, err := sourceStore.GetAllVaccinations()
	if err != nil {
		return fmt.Errorf("failed to get vaccination records from source: %w", err)
	}
	for _, record := range vaccinations {
		if err := ctx.Store.AddVaccination(record); err != nil {
			return fmt.Errorf("failed to add vaccination record %s: %w", record.ID, err)
		}
	}
	fmt.Printf("    Migrated %d vaccination records\n", len(vaccinations))

	fmt.Println("  Migrating medications...")
	meds, err := sourceStore.GetAllMedications()
	if err != nil {
		return fmt.Errorf("failed to get medications from source: %w", err)
	}
	for _, med := range meds {
		if err := ctx.Store.AddMedication(med); err != nil {
			return fmt.Errorf("failed to add medication %s: %w", med.ID, err)
		}
	}
	fmt.Printf("    Migrated %d medications\n", len(meds))

	fmt.Println("  Migrating weight entries...")
	entries, err := sourceStore.GetAllWeightEntries()
	if err != nil {
		return fmt.Errorf("failed to get weight entries from source: %w", err)
	}
	for _, entry := range entries {
		if err := ctx.Store.AddWeightEntry(entry); err != nil {
			return fmt.Errorf("failed to add weight entry %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Migrated %d weight entries\n", len(entries))

	fmt.Println("  Migrating vet visit tasks...")
	visitCount := 0
	for _, pet := range pets {
		visits, err := sourceStore.GetVisitTasks(pet.ID)
		if err != nil {
			return fmt.Errorf("failed to get visit tasks from source: %w", err)
		}
		for day, tasks := range visits {
			for _, task := range tasks {
				if err := ctx.Store.AddVisitTask(pet.ID, day, task); err != nil {
					return fmt.Errorf("failed to add visit task for %s: %w", day, err)
				}
				visitCount++
			}
		}
	}
	fmt.Printf("    Migrated %d visit tasks\n", visitCount)

	fmt.Println("  Migrating appointments...")
	apptCount := 0
	for _, completed := range []bool{false, true} {
		appts, err := sourceStore.GetAppointments(completed)
		if err != nil {
			return fmt.Errorf("failed to get appointments from source: %w", err)
		}
		for _, appt := range appts {
			if err := ctx.Store.AddAppointment(appt); err != nil {
				return fmt.Errorf("failed to add appointment %s: %w", appt.ID, err)
			}
			apptCount++
		}
	}
	fmt.Printf("    Migrated %d appointments\n", apptCount)

	fmt.Println("  Migrating reminders...")
	rems, err := sourceStore.GetReminders()
	if err != nil {
		return fmt.Errorf("failed to get reminders from source: %w", err)
	}
	for _, rem := range rems {
		if err := ctx.Store.AddReminder(rem); err != nil {
			return fmt.Errorf("failed to add reminder %s: %w", rem.ID, err)
		}
	}
	fmt.Printf("    Migrated %d reminders\n", len(rems))

	return nil
}
