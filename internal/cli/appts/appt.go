package appts

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/models"
)

type ApptAddCmd struct {
	Text string `arg:"" help:"Appointment description."`
	At   string `required:"" help:"Appointment date and time (YYYY-MM-DD HH:MM)."`
}

func (c *ApptAddCmd) Run(ctx *cli.Context) error {
	when, err := cli.ParseDateTime(c.At)
	if err != nil {
		return err
	}

	appt := models.Appointment{
		ID:   uuid.New().String(),
		Text: c.Text,
		Date: when,
	}
	if err := appt.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.AddAppointment(appt); err != nil {
		return err
	}

	fmt.Printf("Added appointment for %s (ID: %s)\n", when.Format(constants.DateTimeFormat), appt.ID)
	return nil
}

type ApptListCmd struct {
	Completed bool `help:"Show completed appointments instead of upcoming ones."`
}

func (c *ApptListCmd) Run(ctx *cli.Context) error {
	appts, err := ctx.Store.GetAppointments(c.Completed)
	if err != nil {
		return fmt.Errorf("failed to get appointments: %w", err)
	}
	if len(appts) == 0 {
		if c.Completed {
			fmt.Println("No completed appointments")
		} else {
			fmt.Println("No upcoming appointments")
		}
		return nil
	}

	if c.Completed {
		fmt.Println("Completed appointments:")
	} else {
		fmt.Println("Upcoming appointments:")
	}
	for _, appt := range appts {
		fmt.Printf("  %s  %s (ID: %s)\n", appt.Date.Format(constants.DateTimeFormat), appt.Text, appt.ID)
	}
	return nil
}

type ApptCompleteCmd struct {
	ID string `arg:"" help:"Appointment ID to mark completed."`
}

func (c *ApptCompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.CompleteAppointment(c.ID); err != nil {
		return err
	}
	fmt.Printf("Completed appointment %s\n", c.ID)
	return nil
}

type ApptDeleteCmd struct {
	ID string `arg:"" help:"Appointment ID to delete."`
}

func (c *ApptDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteAppointment(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted appointment %s\n", c.ID)
	return nil
}
