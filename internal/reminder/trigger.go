package reminder

import (
	"fmt"
	"time"

	"github.com/pawkeep/pawkeep/internal/constants"
)

// Trigger describes when the notification agent should fire a reminder.
// A calendar trigger fires whenever the wall clock matches every set
// component; an interval trigger fires once after the delay. Unset
// components are nil so the agent knows which fields to match.
type Trigger struct {
	Interval time.Duration `json:"interval,omitempty"`

	Year    *int `json:"year,omitempty"`
	Month   *int `json:"month,omitempty"`
	Day     *int `json:"day,omitempty"`
	Weekday *int `json:"weekday,omitempty"` // 0 = Sunday
	Hour    *int `json:"hour,omitempty"`
	Minute  *int `json:"minute,omitempty"`

	Repeats bool `json:"repeats"`
}

// IsInterval reports whether the trigger is a one-shot delay rather than a
// calendar match.
func (t Trigger) IsInterval() bool {
	return t.Interval > 0
}

// BuildTrigger derives the trigger for a recurrence kind from its anchor
// date. A once reminder whose anchor is not in the future degrades to a
// short fixed delay so it still fires visibly.
func BuildTrigger(anchor time.Time, kind constants.RecurrenceKind, now time.Time) (Trigger, error) {
	year, month, day := anchor.Date()
	weekday := int(anchor.Weekday())
	hour, minute := anchor.Hour(), anchor.Minute()
	monthNum := int(month)

	switch kind {
	case constants.RecurrenceOnce:
		if !anchor.After(now) {
			return Trigger{Interval: constants.PastAnchorInterval}, nil
		}
		return Trigger{
			Year:   &year,
			Month:  &monthNum,
			Day:    &day,
			Hour:   &hour,
			Minute: &minute,
		}, nil
	case constants.RecurrenceDaily:
		return Trigger{
			Hour:    &hour,
			Minute:  &minute,
			Repeats: true,
		}, nil
	case constants.RecurrenceWeekly:
		return Trigger{
			Weekday: &weekday,
			Hour:    &hour,
			Minute:  &minute,
			Repeats: true,
		}, nil
	case constants.RecurrenceMonthly:
		return Trigger{
			Day:     &day,
			Hour:    &hour,
			Minute:  &minute,
			Repeats: true,
		}, nil
	case constants.RecurrenceYearly:
		return Trigger{
			Month:   &monthNum,
			Day:     &day,
			Hour:    &hour,
			Minute:  &minute,
			Repeats: true,
		}, nil
	default:
		return Trigger{}, fmt.Errorf("invalid recurrence kind: %s", kind)
	}
}
