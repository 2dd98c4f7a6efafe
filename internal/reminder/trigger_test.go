package reminder

import (
	"testing"
	"time"

	"github.com/pawkeep/pawkeep/internal/constants"
)

func intp(v int) *int { return &v }

func triggerComponentsEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestBuildTrigger(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	anchor := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name   string
		anchor time.Time
		kind   constants.RecurrenceKind
		want   Trigger
	}{
		{
			name:   "once in the future matches full date",
			anchor: anchor,
			kind:   constants.RecurrenceOnce,
			want:   Trigger{Year: intp(2025), Month: intp(3), Day: intp(15), Hour: intp(14), Minute: intp(30)},
		},
		{
			name:   "daily matches time of day",
			anchor: anchor,
			kind:   constants.RecurrenceDaily,
			want:   Trigger{Hour: intp(14), Minute: intp(30), Repeats: true},
		},
		{
			name:   "weekly matches weekday and time",
			anchor: anchor, // a Saturday
			kind:   constants.RecurrenceWeekly,
			want:   Trigger{Weekday: intp(int(time.Saturday)), Hour: intp(14), Minute: intp(30), Repeats: true},
		},
		{
			name:   "monthly matches day of month and time",
			anchor: anchor,
			kind:   constants.RecurrenceMonthly,
			want:   Trigger{Day: intp(15), Hour: intp(14), Minute: intp(30), Repeats: true},
		},
		{
			name:   "yearly matches month day and time",
			anchor: anchor,
			kind:   constants.RecurrenceYearly,
			want:   Trigger{Month: intp(3), Day: intp(15), Hour: intp(14), Minute: intp(30), Repeats: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildTrigger(tt.anchor, tt.kind, now)
			if err != nil {
				t.Fatalf("BuildTrigger() returned unexpected error: %v", err)
			}
			if got.IsInterval() {
				t.Fatalf("BuildTrigger() = interval trigger, want calendar trigger")
			}
			if got.Repeats != tt.want.Repeats {
				t.Errorf("Repeats = %v, want %v", got.Repeats, tt.want.Repeats)
			}
			pairs := []struct {
				name      string
				got, want *int
			}{
				{"Year", got.Year, tt.want.Year},
				{"Month", got.Month, tt.want.Month},
				{"Day", got.Day, tt.want.Day},
				{"Weekday", got.Weekday, tt.want.Weekday},
				{"Hour", got.Hour, tt.want.Hour},
				{"Minute", got.Minute, tt.want.Minute},
			}
			for _, p := range pairs {
				if !triggerComponentsEqual(p.got, p.want) {
					t.Errorf("%s mismatch: got %v, want %v", p.name, p.got, p.want)
				}
			}
		})
	}

	t.Run("once in the past degrades to a short delay", func(t *testing.T) {
		past := now.Add(-time.Hour)
		got, err := BuildTrigger(past, constants.RecurrenceOnce, now)
		if err != nil {
			t.Fatalf("BuildTrigger() returned unexpected error: %v", err)
		}
		if !got.IsInterval() {
			t.Fatal("BuildTrigger() for past anchor = calendar trigger, want interval")
		}
		if got.Interval != constants.PastAnchorInterval {
			t.Errorf("Interval = %v, want %v", got.Interval, constants.PastAnchorInterval)
		}
		if got.Repeats {
			t.Error("Repeats = true for past one-shot, want false")
		}
	})

	t.Run("once exactly now degrades to a short delay", func(t *testing.T) {
		got, err := BuildTrigger(now, constants.RecurrenceOnce, now)
		if err != nil {
			t.Fatalf("BuildTrigger() returned unexpected error: %v", err)
		}
		if !got.IsInterval() {
			t.Error("BuildTrigger() for anchor == now = calendar trigger, want interval")
		}
	})

	t.Run("unknown kind errors", func(t *testing.T) {
		if _, err := BuildTrigger(anchor, "fortnightly", now); err == nil {
			t.Error("BuildTrigger() with unknown kind = nil, want error")
		}
	})
}
