package schedule

import (
	"context"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/gestation"
	"sonoplan/pkg/storage"
	"time"
)

//go:generate mockgen -package mockschedule -source=interface.go -destination=mock/mockschedule.go *
type Scheduler interface {
	CreatePatient(ctx context.Context, createdBy domain.UserID, fullName, phone string) (*domain.Patient, error)
	Patients(ctx context.Context, createdBy domain.UserID) ([]domain.Patient, error)

	Create(ctx context.Context, req CreateRequest) (*domain.Schedule, error)
	Update(ctx context.Context, id domain.ScheduleID, req UpdateRequest) (*domain.Schedule, error)
	Reschedule(ctx context.Context, patientID domain.PatientID, lmp string) (*domain.Schedule, error)
	Delete(ctx context.Context, id domain.ScheduleID) error
	Schedules(ctx context.Context, filter storage.ScheduleFilter) ([]domain.Schedule, error)

	Plan(ctx context.Context, patientID domain.PatientID) (*Plan, error)
	Calculate(ctx context.Context, lmp string, definitions []gestation.Definition) (*Calculation, error)

	ScanTypes(ctx context.Context) ([]domain.ScanType, error)
	CreateScanType(ctx context.Context,
		createdBy domain.UserID,
		name string,
		weekRangeStart, weekRangeEnd int) (*domain.ScanType, error)
	DeleteScanType(ctx context.Context, id domain.ScanTypeID) error

	Report(ctx context.Context, now time.Time) (*domain.Report, error)
	SendReminder(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error)
}
