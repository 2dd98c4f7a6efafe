package system

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/reminder"
)

// NotifyCmd probes the notification agent by scheduling a short one-shot
// test notification. Useful when diagnosing why reminders never fire.
type NotifyCmd struct {
	DryRun bool `help:"Check agent availability without sending a notification."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	status, err := ctx.Notifier.PermissionStatus()
	if err != nil {
		return fmt.Errorf("notification agent is not reachable: %w", err)
	}
	fmt.Printf("Notification agent is reachable (permission: %s)\n", status)

	if c.DryRun {
		return nil
	}
	if status != reminder.PermissionGranted {
		fmt.Println("Permission not granted; the test notification may not be shown")
	}

	id := uuid.New().String()
	trigger := reminder.Trigger{Interval: constants.PastAnchorInterval}
	if err := ctx.Notifier.Schedule(id, "Test notification", constants.NotificationBody, trigger); err != nil {
		return fmt.Errorf("failed to schedule test notification: %w", err)
	}
	fmt.Printf("Test notification scheduled; it should appear in %s\n", constants.PastAnchorInterval)
	return nil
}
