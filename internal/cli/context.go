package cli

import (
	"fmt"
	"time"

	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/models"
	"github.com/pawkeep/pawkeep/internal/reminder"
	"github.com/pawkeep/pawkeep/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Scheduler *reminder.Scheduler
	Notifier  reminder.Notifier
}

// ResolveSelectedPet returns the active pet, or ok=false after printing the
// standard advisory. Pet-scoped commands are simply unavailable without a
// selection; that is not an error condition.
func (c *Context) ResolveSelectedPet() (models.Pet, bool, error) {
	pet, ok, err := c.Store.GetSelectedPet()
	if err != nil {
		return models.Pet{}, false, err
	}
	if !ok {
		fmt.Println("No pet selected. Run 'pawkeep pet select <id>' first.")
		return models.Pet{}, false, nil
	}
	return pet, true, nil
}

// ParseDate parses a day-granularity date (YYYY-MM-DD)
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// ParseDateTime parses a date with time of day (YYYY-MM-DD HH:MM)
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateTimeFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time format (expected YYYY-MM-DD HH:MM): %w", err)
	}
	return t, nil
}

// ParseRecurrence maps the user-facing recurrence flag to its kind
func ParseRecurrence(s string) (constants.RecurrenceKind, error) {
	switch s {
	case "once":
		return constants.RecurrenceOnce, nil
	case "daily":
		return constants.RecurrenceDaily, nil
	case "weekly":
		return constants.RecurrenceWeekly, nil
	case "monthly":
		return constants.RecurrenceMonthly, nil
	case "yearly":
		return constants.RecurrenceYearly, nil
	default:
		return "", fmt.Errorf("invalid recurrence: %s (must be once, daily, weekly, monthly, or yearly)", s)
	}
}
