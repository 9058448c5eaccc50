package storage

import (
	"context"
	"sonoplan/pkg/domain"
	"time"
)

// ReminderStorage persists scan reminders.
type ReminderStorage interface {
	// StoreReminders inserts reminders and returns the stored rows.
	StoreReminders(ctx context.Context, reminders ...domain.Reminder) ([]domain.Reminder, error)
	// DeleteUnsentReminders removes reminders of the schedule that have not been
	// sent yet and returns how many were removed.
	DeleteUnsentReminders(ctx context.Context, scheduleID domain.ScheduleID) (int64, error)
	// ReminderByID returns the reminder with the given ID, or nil when not found.
	ReminderByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error)
	// MarkReminderSent sets sent_at on an unsent reminder and returns it. It
	// returns nil when the reminder does not exist or was already sent.
	MarkReminderSent(ctx context.Context, id domain.ReminderID, sentAt time.Time, sentBy domain.UserID) (*domain.Reminder, error)
	// Reminders lists the reminders of a schedule ordered by reminder date.
	Reminders(ctx context.Context, scheduleID domain.ScheduleID) ([]domain.Reminder, error)
}
