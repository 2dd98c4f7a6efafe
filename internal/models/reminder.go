package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/pawkeep/pawkeep/internal/constants"
)

// Reminder is a locally recorded scheduled notification. The ID doubles as
// the identifier registered with the notification agent, so cancelling uses
// the same value on both sides.
type Reminder struct {
	ID         string                   `json:"id"`
	Title      string                   `json:"title"`
	Anchor     time.Time                `json:"anchor"`
	Recurrence constants.RecurrenceKind `json:"recurrence"`
	CreatedAt  time.Time                `json:"created_at"`
}

func (r *Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("reminder title cannot be empty")
	}
	switch r.Recurrence {
	case constants.RecurrenceOnce, constants.RecurrenceDaily, constants.RecurrenceWeekly,
		constants.RecurrenceMonthly, constants.RecurrenceYearly:
	default:
		return fmt.Errorf("invalid recurrence kind: %s", r.Recurrence)
	}
	return nil
}

// FormatRecurrence returns a human-readable description of when the reminder
// fires, e.g. "Monthly on the 3rd at 5:00 PM".
func (r *Reminder) FormatRecurrence() string {
	timeStr := r.Anchor.Format("3:04 PM")

	switch r.Recurrence {
	case constants.RecurrenceOnce:
		return fmt.Sprintf("Once on %s at %s", r.Anchor.Format("Jan 2, 2006"), timeStr)
	case constants.RecurrenceDaily:
		return fmt.Sprintf("Daily at %s", timeStr)
	case constants.RecurrenceWeekly:
		return fmt.Sprintf("Weekly on %ss at %s", r.Anchor.Weekday(), timeStr)
	case constants.RecurrenceMonthly:
		day := r.Anchor.Day()
		return fmt.Sprintf("Monthly on the %d%s at %s", day, OrdinalSuffix(day), timeStr)
	case constants.RecurrenceYearly:
		day := r.Anchor.Day()
		return fmt.Sprintf("Yearly on %s %d%s at %s", r.Anchor.Month(), day, OrdinalSuffix(day), timeStr)
	default:
		return "Unknown"
	}
}

// OrdinalSuffix returns the English ordinal suffix for a day of month.
func OrdinalSuffix(n int) string {
	switch n {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}
