package constants

import "time"

// RecurrenceKind represents how a scheduled reminder repeats
type RecurrenceKind string

const (
	AppName           = "pawkeep"
	DefaultConfigPath = "~/.config/pawkeep/pawkeep.db"
	Version           = "v0.3.0"

	// DateFormat is the standard day-granularity date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is the format accepted for reminder and appointment anchors
	DateTimeFormat = "2006-01-02 15:04"

	// TimeFormat is the standard time format (HH:MM)
	TimeFormat = "15:04"

	// Agent (local notification daemon) constants
	AgentLockfileName  = "pawkeep-agent.lock"
	AgentIdentifier    = "com.pawkeep.agent"
	NotificationBody   = "Time to care for your pet."
	PastAnchorInterval = 5 * time.Second

	// Recurrence constants
	RecurrenceOnce    RecurrenceKind = "once"
	RecurrenceDaily   RecurrenceKind = "daily"
	RecurrenceWeekly  RecurrenceKind = "weekly"
	RecurrenceMonthly RecurrenceKind = "monthly"
	RecurrenceYearly  RecurrenceKind = "yearly"
)

// CommonVaccines is the suggested vaccine list shown when adding a
// vaccination record. Freeform names are still accepted.
var CommonVaccines = []string{
	"Rabies",
	"DHPP (Distemper)",
	"Bordetella (Kennel Cough)",
	"Leptospirosis",
	"Lyme Disease",
	"Canine Influenza",
	"Parvovirus",
	"Coronavirus",
}

// DueSoonWindow is how far ahead a vaccination's next-due date may be for it
// to count as "due soon" in listings.
const DueSoonWindow = 30 * 24 * time.Hour
