package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/logger"
	"github.com/pawkeep/pawkeep/internal/models"
	"github.com/pawkeep/pawkeep/internal/storage"
)

// PermissionStatus is the agent's notification permission state.
type PermissionStatus string

const (
	PermissionGranted       PermissionStatus = "granted"
	PermissionDenied        PermissionStatus = "denied"
	PermissionNotDetermined PermissionStatus = "not_determined"
)

// Notifier is the platform notification facility the scheduler registers
// triggers with. The local agent client implements it; tests substitute a
// fake.
type Notifier interface {
	PermissionStatus() (PermissionStatus, error)
	RequestPermission() (bool, error)
	Schedule(id, title, body string, trigger Trigger) error
	Cancel(ids []string) error
}

// Scheduler turns user reminder requests into agent triggers and keeps the
// local record the reminder listings are built from. The local record is the
// UI's source of truth; it is not reconciled against the agent's pending
// set.
type Scheduler struct {
	store    storage.Provider
	notifier Notifier
	now      func() time.Time
}

func New(store storage.Provider, notifier Notifier) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// Schedule validates the request, registers the derived trigger with the
// agent, and records the reminder locally. The local record is only written
// after the agent accepts, so a dead agent never leaves a phantom entry.
func (s *Scheduler) Schedule(title string, anchor time.Time, kind constants.RecurrenceKind) (models.Reminder, error) {
	reminder := models.Reminder{
		ID:         uuid.New().String(),
		Title:      strings.TrimSpace(title),
		Anchor:     anchor,
		Recurrence: kind,
		CreatedAt:  s.now(),
	}
	if err := reminder.Validate(); err != nil {
		return models.Reminder{}, err
	}

	trigger, err := BuildTrigger(anchor, kind, s.now())
	if err != nil {
		return models.Reminder{}, err
	}

	if err := s.notifier.Schedule(reminder.ID, reminder.Title, constants.NotificationBody, trigger); err != nil {
		logger.Error("Failed to register reminder with notification agent", "id", reminder.ID, "error", err)
		return models.Reminder{}, fmt.Errorf("failed to schedule notification: %w", err)
	}

	if err := s.store.AddReminder(reminder); err != nil {
		return models.Reminder{}, err
	}

	logger.Info("Scheduled reminder", "id", reminder.ID, "recurrence", kind)
	return reminder, nil
}

// Cancel removes the agent-side trigger and the local record. The local
// delete proceeds even when the agent call fails, so the listing the user
// sees never resurrects a cancelled reminder.
func (s *Scheduler) Cancel(id string) error {
	if err := s.notifier.Cancel([]string{id}); err != nil {
		logger.Warn("Failed to cancel reminder with notification agent", "id", id, "error", err)
	}
	return s.store.DeleteReminder(id)
}

// ListPending returns the locally recorded reminders.
func (s *Scheduler) ListPending() ([]models.Reminder, error) {
	return s.store.GetReminders()
}
