package models

import (
	"testing"
	"time"

	"github.com/pawkeep/pawkeep/internal/constants"
)

func TestReminderValidate(t *testing.T) {
	tests := []struct {
		name     string
		reminder Reminder
		wantErr  bool
	}{
		{"valid", Reminder{Title: "Flea treatment", Recurrence: constants.RecurrenceMonthly}, false},
		{"empty title", Reminder{Title: "", Recurrence: constants.RecurrenceDaily}, true},
		{"whitespace title", Reminder{Title: "   ", Recurrence: constants.RecurrenceDaily}, true},
		{"unknown recurrence", Reminder{Title: "Walk", Recurrence: "fortnightly"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reminder.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatRecurrence(t *testing.T) {
	anchor := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local) // a Saturday

	tests := []struct {
		name string
		kind constants.RecurrenceKind
		want string
	}{
		{"once", constants.RecurrenceOnce, "Once on Mar 15, 2025 at 2:30 PM"},
		{"daily", constants.RecurrenceDaily, "Daily at 2:30 PM"},
		{"weekly", constants.RecurrenceWeekly, "Weekly on Saturdays at 2:30 PM"},
		{"monthly", constants.RecurrenceMonthly, "Monthly on the 15th at 2:30 PM"},
		{"yearly", constants.RecurrenceYearly, "Yearly on March 15th at 2:30 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reminder{Title: "x", Anchor: anchor, Recurrence: tt.kind}
			if got := r.FormatRecurrence(); got != tt.want {
				t.Errorf("FormatRecurrence() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("first of month uses st", func(t *testing.T) {
		r := Reminder{
			Title:      "x",
			Anchor:     time.Date(2025, 4, 1, 9, 0, 0, 0, time.Local),
			Recurrence: constants.RecurrenceMonthly,
		}
		if got := r.FormatRecurrence(); got != "Monthly on the 1st at 9:00 AM" {
			t.Errorf("FormatRecurrence() = %q", got)
		}
	})
}

func TestOrdinalSuffix(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "st"}, {2, "nd"}, {3, "rd"}, {4, "th"},
		{11, "th"}, {12, "th"}, {13, "th"},
		{21, "st"}, {22, "nd"}, {23, "rd"}, {24, "th"},
		{30, "th"}, {31, "st"},
	}
	for _, tt := range tests {
		if got := OrdinalSuffix(tt.n); got != tt.want {
			t.Errorf("OrdinalSuffix(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
