package storage

import (
	"context"
	"sonoplan/pkg/domain"
	"time"
)

// ScheduleUpdates is the set of fields written when a schedule changes.
// LMPDate and EDDDate are always written together.
type ScheduleUpdates struct {
	LMPDate time.Time
	EDDDate time.Time
	// Corrections, when provided, replaces the AUA weeks and corrected LMP
	// (nil fields are stored as NULL). When nil both are left unchanged.
	Corrections *ScheduleCorrections
}

// ScheduleCorrections holds the optional ultrasound corrections of a schedule.
type ScheduleCorrections struct {
	AUAWeeks     *int
	CorrectedLMP *time.Time
}

// ScheduleFilter narrows Schedules. Zero fields do not filter.
type ScheduleFilter struct {
	PatientID domain.PatientID
	CreatedBy domain.UserID
}

// ScheduleCounts are the aggregate counters over all schedules.
type ScheduleCounts struct {
	Total int64
	// Upcoming counts schedules whose due date is after the reference day.
	Upcoming int64
}

// ScheduleStorage persists pregnancy schedules (patient_scans rows).
type ScheduleStorage interface {
	// StoreSchedule inserts a schedule and returns it with generated fields populated.
	StoreSchedule(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error)
	// UpdateSchedule applies updates to the schedule and returns the updated row,
	// or nil when not found. updated_at is set automatically.
	UpdateSchedule(ctx context.Context, id domain.ScheduleID, updates ScheduleUpdates) (*domain.Schedule, error)
	// DeleteSchedule removes the schedule and its reminders and returns the
	// deleted row, or nil when not found.
	DeleteSchedule(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error)
	// ScheduleByID returns the schedule with the given ID, or nil when not found.
	ScheduleByID(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error)
	// LatestScheduleByPatient returns the most recently created schedule of the
	// patient, or nil when the patient has none.
	LatestScheduleByPatient(ctx context.Context, patientID domain.PatientID) (*domain.Schedule, error)
	// Schedules lists schedules matching filter, newest first.
	Schedules(ctx context.Context, filter ScheduleFilter) ([]domain.Schedule, error)
	// ScheduleCounts counts all schedules and those due after now.
	ScheduleCounts(ctx context.Context, now time.Time) (ScheduleCounts, error)
}
