package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReminderID uniquely identifies a reminder.
type ReminderID uuid.UUID

// String returns the canonical UUID form.
func (id ReminderID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id ReminderID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the ID.
func (id *ReminderID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Reminder is a notification planned ahead of a recommended scan date.
type Reminder struct {
	ID         ReminderID `json:"id"`
	ScheduleID ScheduleID `json:"scheduleId"`
	ScanTypeID ScanTypeID `json:"scanTypeId"`
	// ReminderDate is the calendar day the reminder becomes due.
	ReminderDate time.Time `json:"reminderDate"`
	Message      string    `json:"message"`
	// SentAt is zero until the reminder has been delivered.
	SentAt time.Time `json:"sentAt"`
	// SentBy is the staff member who sent the reminder, zero when sent by the worker.
	SentBy    UserID    `json:"sentBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Report aggregates the counters shown on the reports screen.
type Report struct {
	TotalPatients  int64 `json:"totalPatients"`
	TotalSchedules int64 `json:"totalSchedules"`
	// UpcomingDeliveries counts schedules whose due date is still ahead.
	UpcomingDeliveries int64 `json:"upcomingDeliveries"`
}
