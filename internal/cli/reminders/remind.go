package reminders

import (
	"fmt"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/reminder"
)

type RemindAddCmd struct {
	Title  string `arg:"" help:"Reminder title."`
	At     string `required:"" help:"Anchor date and time (YYYY-MM-DD HH:MM)."`
	Repeat string `default:"once" help:"Recurrence: once, daily, weekly, monthly, or yearly."`
}

func (c *RemindAddCmd) Run(ctx *cli.Context) error {
	anchor, err := cli.ParseDateTime(c.At)
	if err != nil {
		return err
	}
	kind, err := cli.ParseRecurrence(c.Repeat)
	if err != nil {
		return err
	}

	rem, err := ctx.Scheduler.Schedule(c.Title, anchor, kind)
	if err != nil {
		return err
	}

	fmt.Printf("Scheduled reminder: %s\n", rem.FormatRecurrence())
	fmt.Printf("ID: %s\n", rem.ID)
	return nil
}

type RemindListCmd struct{}

func (c *RemindListCmd) Run(ctx *cli.Context) error {
	rems, err := ctx.Scheduler.ListPending()
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	if len(rems) == 0 {
		fmt.Println("No scheduled reminders")
		return nil
	}

	fmt.Println("Scheduled reminders:")
	for _, rem := range rems {
		fmt.Printf("  %s - %s (ID: %s)\n", rem.Title, rem.FormatRecurrence(), rem.ID)
	}
	return nil
}

type RemindCancelCmd struct {
	ID string `arg:"" help:"Reminder ID to cancel."`
}

func (c *RemindCancelCmd) Run(ctx *cli.Context) error {
	if err := ctx.Scheduler.Cancel(c.ID); err != nil {
		return err
	}
	fmt.Printf("Cancelled reminder %s\n", c.ID)
	return nil
}

type RemindPermissionCmd struct {
	Request bool `help:"Request notification permission instead of just checking it."`
}

func (c *RemindPermissionCmd) Run(ctx *cli.Context) error {
	if c.Request {
		granted, err := ctx.Notifier.RequestPermission()
		if err != nil {
			return fmt.Errorf("failed to request notification permission: %w", err)
		}
		if granted {
			fmt.Println("Notification permission granted")
		} else {
			fmt.Println("Notification permission denied")
		}
		return nil
	}

	status, err := ctx.Notifier.PermissionStatus()
	if err != nil {
		return fmt.Errorf("failed to check notification permission: %w", err)
	}
	switch status {
	case reminder.PermissionGranted:
		fmt.Println("Notifications are enabled")
	case reminder.PermissionDenied:
		fmt.Println("Notifications are disabled; enable them in system settings")
	default:
		fmt.Println("Notification permission has not been requested yet; run with --request")
	}
	return nil
}
