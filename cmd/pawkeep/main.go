package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/cli/appts"
	"github.com/pawkeep/pawkeep/internal/cli/health"
	"github.com/pawkeep/pawkeep/internal/cli/pets"
	"github.com/pawkeep/pawkeep/internal/cli/photos"
	"github.com/pawkeep/pawkeep/internal/cli/reminders"
	"github.com/pawkeep/pawkeep/internal/cli/system"
	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/errors"
	"github.com/pawkeep/pawkeep/internal/logger"
	"github.com/pawkeep/pawkeep/internal/notifier"
	"github.com/pawkeep/pawkeep/internal/reminder"
	"github.com/pawkeep/pawkeep/internal/storage"
	"github.com/pawkeep/pawkeep/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path. A .json suffix selects the JSON document store; anything else uses SQLite." type:"path" default:"~/.config/pawkeep/pawkeep.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init system.InitCmd `cmd:"" help:"Initialize pawkeep storage."`
	Pet  struct {
		Add      pets.PetAddCmd      `cmd:"" help:"Add a pet profile."`
		List     pets.PetListCmd     `cmd:"" help:"List pet profiles." default:"1"`
		Select   pets.PetSelectCmd   `cmd:"" help:"Select the active pet."`
		Delete   pets.PetDeleteCmd   `cmd:"" help:"Delete a pet and all of its records."`
		SetImage pets.PetSetImageCmd `cmd:"" name:"set-image" help:"Set a pet's profile image."`
	} `cmd:"" help:"Manage pet profiles."`
	Photo struct {
		Add     photos.PhotoAddCmd     `cmd:"" help:"Add a photo for the selected pet."`
		List    photos.PhotoListCmd    `cmd:"" help:"List photos." default:"1"`
		Caption photos.PhotoCaptionCmd `cmd:"" help:"Update a photo's caption."`
		Delete  photos.PhotoDeleteCmd  `cmd:"" help:"Delete a photo."`
		Export  photos.PhotoExportCmd  `cmd:"" help:"Export a photo's image to a file."`
	} `cmd:"" help:"Manage pet photos."`
	Vax struct {
		Add     health.VaxAddCmd     `cmd:"" help:"Record a vaccination for the selected pet."`
		List    health.VaxListCmd    `cmd:"" help:"List vaccination records." default:"1"`
		Edit    health.VaxEditCmd    `cmd:"" help:"Edit a vaccination record."`
		Delete  health.VaxDeleteCmd  `cmd:"" help:"Delete a vaccination record."`
		Suggest health.VaxSuggestCmd `cmd:"" help:"List common vaccine names."`
	} `cmd:"" help:"Manage vaccination records."`
	Med struct {
		Add    health.MedAddCmd    `cmd:"" help:"Add a medication for the selected pet."`
		List   health.MedListCmd   `cmd:"" help:"List medications." default:"1"`
		Edit   health.MedEditCmd   `cmd:"" help:"Edit a medication."`
		Delete health.MedDeleteCmd `cmd:"" help:"Delete a medication."`
	} `cmd:"" help:"Manage medications."`
	Weight struct {
		Add    health.WeightAddCmd    `cmd:"" help:"Record a weight measurement for the selected pet."`
		List   health.WeightListCmd   `cmd:"" help:"Show weight history." default:"1"`
		Delete health.WeightDeleteCmd `cmd:"" help:"Delete a weight entry."`
	} `cmd:"" help:"Track pet weight."`
	Visit struct {
		Add    health.VisitAddCmd    `cmd:"" help:"Add a vet visit task."`
		List   health.VisitListCmd   `cmd:"" help:"List vet visit tasks." default:"1"`
		Edit   health.VisitEditCmd   `cmd:"" help:"Edit a vet visit task."`
		Delete health.VisitDeleteCmd `cmd:"" help:"Delete a vet visit task."`
	} `cmd:"" help:"Plan vet visit agendas."`
	Appt struct {
		Add      appts.ApptAddCmd      `cmd:"" help:"Add an appointment."`
		List     appts.ApptListCmd     `cmd:"" help:"List appointments." default:"1"`
		Complete appts.ApptCompleteCmd `cmd:"" help:"Mark an appointment completed."`
		Delete   appts.ApptDeleteCmd   `cmd:"" help:"Delete an appointment."`
	} `cmd:"" help:"Manage appointments."`
	Remind struct {
		Add        reminders.RemindAddCmd        `cmd:"" help:"Schedule a reminder."`
		List       reminders.RemindListCmd       `cmd:"" help:"List scheduled reminders." default:"1"`
		Cancel     reminders.RemindCancelCmd     `cmd:"" help:"Cancel a reminder."`
		Permission reminders.RemindPermissionCmd `cmd:"" help:"Check or request notification permission."`
	} `cmd:"" help:"Manage reminders."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Probe the notification agent (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Pet care companion: profiles, health records, and reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = sqlite.NewStore(CLI.Config)
	}

	agent := notifier.New()
	appCtx := &cli.Context{
		Store:     store,
		Scheduler: reminder.New(store, agent),
		Notifier:  agent,
	}

	// Load the store before running the command (init handles its own loading)
	if !CLI.Init.Force && ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
