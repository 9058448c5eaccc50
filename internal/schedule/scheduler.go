package schedule

import (
	"context"
	"fmt"
	"sonoplan/internal/config"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/gestation"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/notify"
	"sonoplan/pkg/serrors"
	"sonoplan/pkg/storage"
	"strings"
	"time"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "sonoplan/internal/schedule"

// Options configure reminder planning and instrumentation of the scheduler.
// These settings are typically derived from application configuration.
type Options struct {
	// ReminderLeadDays is how many days before a recommended scan date its reminder is due.
	ReminderLeadDays int
	// ReminderMaxAttempts is the maximum number of attempts the background worker
	// makes when delivering a reminder.
	ReminderMaxAttempts int

	// Notifier delivers due reminders. Defaults to notify.Log.
	Notifier notify.Notifier
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// MeterProvider records calculated plans. Defaults to the global provider.
	MeterProvider metric.MeterProvider
	// TracerProvider traces service operations. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ReminderLeadDays:    cfg.Schedule.ReminderLeadDays,
		ReminderMaxAttempts: cfg.Schedule.ReminderMaxAttempts,
	}
}

// scheduler is the concrete implementation of the Scheduler interface.
// It validates input, derives due dates with the gestation package and
// coordinates persistence and reminder jobs through the storage layer.
type scheduler struct {
	options Options
	storage storage.Storage

	tracer          trace.Tracer
	plansCalculated metric.Int64Counter
}

// CreatePatient registers a profile with the patient role.
func (s *scheduler) CreatePatient(ctx context.Context,
	createdBy domain.UserID,
	fullName, phone string) (*domain.Patient, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "full name is required")
	}

	var patient *domain.Patient
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		patient, err = tx.StorePatient(ctx, domain.Patient{
			FullName:  fullName,
			Phone:     strings.TrimSpace(phone),
			CreatedBy: createdBy,
		})
		if err != nil {
			return fmt.Errorf("could not store patient: %w", err)
		}

		if err := tx.AssignRole(ctx, domain.UserID(patient.ID), domain.RolePatient); err != nil {
			return fmt.Errorf("could not assign patient role: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create patient: %w", err)
	}

	logger.Info(ctx, "patient registered", zap.Stringer("patientID", patient.ID))

	return patient, nil
}

// Patients lists patients, optionally only those registered by createdBy.
func (s *scheduler) Patients(ctx context.Context, createdBy domain.UserID) ([]domain.Patient, error) {
	patients, err := s.storage.Patients(ctx, createdBy)
	if err != nil {
		return nil, fmt.Errorf("could not list patients: %w", err)
	}

	return patients, nil
}

// Create stores a new schedule for an existing patient. The due date is
// derived from the LMP and reminders are planned in the same transaction.
func (s *scheduler) Create(ctx context.Context, req CreateRequest) (_ *domain.Schedule, err error) {
	ctx, span := s.tracer.Start(ctx, "schedule.Create",
		trace.WithAttributes(attribute.String("patient.id", req.PatientID.String())))
	defer func() { endSpan(span, err) }()

	lmp, err := parseDate("LMP date", req.LMP)
	if err != nil {
		return nil, err
	}
	corrections, err := parseCorrections(req.AUAWeeks, req.CorrectedLMP)
	if err != nil {
		return nil, err
	}

	patient, err := s.storage.PatientByID(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("could not get patient: %w", err)
	}
	if patient == nil {
		return nil, serrors.With(serrors.ErrNotFound, "patient not found")
	}

	scanTypes, err := s.storage.ScanTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get scan types: %w", err)
	}

	var created *domain.Schedule
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err = tx.StoreSchedule(ctx, domain.Schedule{
			PatientID:    patient.ID,
			LMPDate:      lmp,
			EDDDate:      gestation.DueDate(lmp),
			AUAWeeks:     corrections.AUAWeeks,
			CorrectedLMP: corrections.CorrectedLMP,
			CreatedBy:    req.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("could not store schedule: %w", err)
		}

		return s.planReminders(ctx, tx, created, scanTypes)
	}); err != nil {
		return nil, fmt.Errorf("could not create schedule: %w", err)
	}

	logger.Info(ctx, "schedule created",
		zap.Stringer("scheduleID", created.ID),
		zap.Stringer("patientID", created.PatientID),
		zap.String("edd", gestation.FormatISODate(created.EDDDate)))

	return created, nil
}

// Update replaces the LMP and corrections of a schedule, recomputes the due
// date and replans the reminders that have not been sent yet.
func (s *scheduler) Update(ctx context.Context, id domain.ScheduleID, req UpdateRequest) (_ *domain.Schedule, err error) {
	ctx, span := s.tracer.Start(ctx, "schedule.Update",
		trace.WithAttributes(attribute.String("schedule.id", id.String())))
	defer func() { endSpan(span, err) }()

	lmp, err := parseDate("LMP date", req.LMP)
	if err != nil {
		return nil, err
	}
	corrections, err := parseCorrections(req.AUAWeeks, req.CorrectedLMP)
	if err != nil {
		return nil, err
	}

	updated, err := s.rewriteLMP(ctx, func(tx storage.AllStorage) (*domain.Schedule, error) {
		return tx.UpdateSchedule(ctx, id, storage.ScheduleUpdates{
			LMPDate:     lmp,
			EDDDate:     gestation.DueDate(lmp),
			Corrections: &corrections,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "schedule updated", zap.Stringer("scheduleID", updated.ID))

	return updated, nil
}

// Reschedule moves the LMP of the patient's most recent schedule.
func (s *scheduler) Reschedule(ctx context.Context,
	patientID domain.PatientID,
	lmpDate string) (_ *domain.Schedule, err error) {
	ctx, span := s.tracer.Start(ctx, "schedule.Reschedule",
		trace.WithAttributes(attribute.String("patient.id", patientID.String())))
	defer func() { endSpan(span, err) }()

	lmp, err := parseDate("LMP date", lmpDate)
	if err != nil {
		return nil, err
	}

	updated, err := s.rewriteLMP(ctx, func(tx storage.AllStorage) (*domain.Schedule, error) {
		latest, err := tx.LatestScheduleByPatient(ctx, patientID)
		if err != nil {
			return nil, fmt.Errorf("could not get latest schedule: %w", err)
		}
		if latest == nil {
			return nil, nil
		}

		return tx.UpdateSchedule(ctx, latest.ID, storage.ScheduleUpdates{
			LMPDate: lmp,
			EDDDate: gestation.DueDate(lmp),
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "schedule rescheduled",
		zap.Stringer("scheduleID", updated.ID),
		zap.Stringer("patientID", patientID))

	return updated, nil
}

// rewriteLMP runs update in a transaction and replaces the unsent reminders of
// the updated schedule. A nil schedule from update is reported as not found.
func (s *scheduler) rewriteLMP(ctx context.Context,
	update func(tx storage.AllStorage) (*domain.Schedule, error)) (*domain.Schedule, error) {
	scanTypes, err := s.storage.ScanTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get scan types: %w", err)
	}

	var updated *domain.Schedule
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err = update(tx)
		if err != nil {
			return fmt.Errorf("could not update schedule: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "schedule not found")
		}

		if _, err := tx.DeleteUnsentReminders(ctx, updated.ID); err != nil {
			return fmt.Errorf("could not delete unsent reminders: %w", err)
		}

		return s.planReminders(ctx, tx, updated, scanTypes)
	}); err != nil {
		return nil, fmt.Errorf("could not rewrite schedule: %w", err)
	}

	return updated, nil
}

// Delete removes a schedule together with its reminders. Jobs of deleted
// reminders are cancelled by the worker when they run.
func (s *scheduler) Delete(ctx context.Context, id domain.ScheduleID) error {
	deleted, err := s.storage.DeleteSchedule(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete schedule: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "schedule not found")
	}

	logger.Info(ctx, "schedule deleted", zap.Stringer("scheduleID", id))

	return nil
}

func (s *scheduler) Schedules(ctx context.Context, filter storage.ScheduleFilter) ([]domain.Schedule, error) {
	schedules, err := s.storage.Schedules(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list schedules: %w", err)
	}

	return schedules, nil
}

// Plan computes the recommended scans of the patient's most recent schedule
// for every configured scan type.
func (s *scheduler) Plan(ctx context.Context, patientID domain.PatientID) (_ *Plan, err error) {
	ctx, span := s.tracer.Start(ctx, "schedule.Plan",
		trace.WithAttributes(attribute.String("patient.id", patientID.String())))
	defer func() { endSpan(span, err) }()

	latest, err := s.storage.LatestScheduleByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("could not get latest schedule: %w", err)
	}
	if latest == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no schedule found for patient")
	}

	scanTypes, err := s.storage.ScanTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get scan types: %w", err)
	}

	s.plansCalculated.Add(ctx, 1, metric.WithAttributes(attribute.String("source", "plan")))

	return &Plan{
		Schedule:       *latest,
		DueDate:        gestation.FormatDate(gestation.DueDate(latest.LMPDate)),
		GestationalAge: gestation.GestationalAge(latest.LMPDate, s.options.Now()),
		Scans:          gestation.AllScans(latest.LMPDate, domain.Definitions(scanTypes)),
	}, nil
}

// Calculate computes a schedule without storing it. When definitions is empty
// the configured scan types are used.
func (s *scheduler) Calculate(ctx context.Context,
	lmpDate string,
	definitions []gestation.Definition) (_ *Calculation, err error) {
	ctx, span := s.tracer.Start(ctx, "schedule.Calculate",
		trace.WithAttributes(attribute.Int("definitions", len(definitions))))
	defer func() { endSpan(span, err) }()

	lmp, err := parseDate("LMP date", lmpDate)
	if err != nil {
		return nil, err
	}

	for _, def := range definitions {
		if err := def.Validate(); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan definition")
		}
	}

	if len(definitions) == 0 {
		scanTypes, err := s.storage.ScanTypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not get scan types: %w", err)
		}
		definitions = domain.Definitions(scanTypes)
	}

	s.plansCalculated.Add(ctx, 1, metric.WithAttributes(attribute.String("source", "calculate")))

	return &Calculation{
		LMP:     gestation.FormatISODate(lmp),
		DueDate: gestation.FormatDate(gestation.DueDate(lmp)),
		Scans:   gestation.AllScans(lmp, definitions),
	}, nil
}

func (s *scheduler) ScanTypes(ctx context.Context) ([]domain.ScanType, error) {
	scanTypes, err := s.storage.ScanTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list scan types: %w", err)
	}

	return scanTypes, nil
}

// CreateScanType stores a custom scan type after validating its week range.
func (s *scheduler) CreateScanType(ctx context.Context,
	createdBy domain.UserID,
	name string,
	weekRangeStart, weekRangeEnd int) (*domain.ScanType, error) {
	def := gestation.Definition{
		Name:           strings.TrimSpace(name),
		WeekRangeStart: weekRangeStart,
		WeekRangeEnd:   weekRangeEnd,
	}
	if err := def.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan type")
	}

	stored, err := s.storage.StoreScanType(ctx, domain.ScanType{
		Name:           def.Name,
		WeekRangeStart: def.WeekRangeStart,
		WeekRangeEnd:   def.WeekRangeEnd,
		CreatedBy:      createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store scan type: %w", err)
	}

	return stored, nil
}

// DeleteScanType removes a custom scan type. Default scan types are protected.
func (s *scheduler) DeleteScanType(ctx context.Context, id domain.ScanTypeID) error {
	scanType, err := s.storage.ScanTypeByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get scan type: %w", err)
	}
	if scanType == nil {
		return serrors.With(serrors.ErrNotFound, "scan type not found")
	}
	if scanType.IsDefault {
		return serrors.With(serrors.ErrForbidden, "default scan types cannot be deleted")
	}

	deleted, err := s.storage.DeleteScanType(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete scan type: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "scan type not found")
	}

	return nil
}

// Report counts patients, schedules and upcoming deliveries as of now.
func (s *scheduler) Report(ctx context.Context, now time.Time) (*domain.Report, error) {
	patients, err := s.storage.PatientCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count patients: %w", err)
	}

	counts, err := s.storage.ScheduleCounts(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("could not count schedules: %w", err)
	}

	return &domain.Report{
		TotalPatients:      patients,
		TotalSchedules:     counts.Total,
		UpcomingDeliveries: counts.Upcoming,
	}, nil
}

// SendReminder marks a due reminder as sent and delivers it through the
// notifier in the same transaction. A failed delivery rolls the mark back so
// the job can retry.
func (s *scheduler) SendReminder(ctx context.Context, id domain.ReminderID) (_ *domain.Reminder, err error) {
	ctx, span := s.tracer.Start(ctx, "schedule.SendReminder",
		trace.WithAttributes(attribute.String("reminder.id", id.String())))
	defer func() { endSpan(span, err) }()

	now := s.options.Now()

	var reminder *domain.Reminder
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		reminder, err = tx.MarkReminderSent(ctx, id, now, domain.UserID{})
		if err != nil {
			return fmt.Errorf("could not mark reminder as sent: %w", err)
		}
		if reminder == nil {
			return serrors.With(serrors.ErrNotFound, "reminder not found or already sent")
		}

		sched, err := tx.ScheduleByID(ctx, reminder.ScheduleID)
		if err != nil {
			return fmt.Errorf("could not get schedule: %w", err)
		}
		if sched == nil {
			return serrors.With(serrors.ErrNotFound, "schedule not found")
		}

		return s.options.Notifier.Notify(ctx, notify.Notification{
			ReminderID:   reminder.ID,
			ScheduleID:   sched.ID,
			PatientID:    sched.PatientID,
			ReminderDate: gestation.FormatISODate(reminder.ReminderDate),
			Message:      reminder.Message,
			SentAt:       now,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not send reminder: %w", err)
	}

	logger.Info(ctx, "scan reminder sent",
		zap.Stringer("reminderID", reminder.ID),
		zap.Stringer("scheduleID", reminder.ScheduleID))

	return reminder, nil
}

// planReminders stores one reminder per scan type, dated ReminderLeadDays before
// the recommended scan date, and enqueues a delivery job for each. Reminders
// that would be due before today are skipped.
func (s *scheduler) planReminders(ctx context.Context,
	tx storage.AllStorage,
	sched *domain.Schedule,
	scanTypes []domain.ScanType) error {
	today := gestation.CalendarDate(s.options.Now())

	reminders := make([]domain.Reminder, 0, len(scanTypes))
	for _, st := range scanTypes {
		calc := gestation.ScanWindow(sched.LMPDate, st.WeekRangeStart, st.WeekRangeEnd)
		scanDate := gestation.AddWeeks(sched.LMPDate, gestation.MidWeek(st.WeekRangeStart, st.WeekRangeEnd))
		remindOn := scanDate.AddDate(0, 0, -s.options.ReminderLeadDays)
		if remindOn.Before(today) {
			continue
		}

		reminders = append(reminders, domain.Reminder{
			ScheduleID:   sched.ID,
			ScanTypeID:   st.ID,
			ReminderDate: remindOn,
			Message:      fmt.Sprintf("%s is recommended on %s (%s)", st.Name, calc.CalculatedDate, calc.DateRange),
		})
	}
	if len(reminders) == 0 {
		return nil
	}

	stored, err := tx.StoreReminders(ctx, reminders...)
	if err != nil {
		return fmt.Errorf("could not store reminders: %w", err)
	}

	for _, r := range stored {
		if _, err := tx.AddJob(ctx, ReminderJobArgs{
			ReminderID:  r.ID,
			maxAttempts: s.options.ReminderMaxAttempts,
		}, &river.InsertOpts{ScheduledAt: r.ReminderDate}); err != nil {
			return fmt.Errorf("could not add reminder job: %w", err)
		}
	}

	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "reminders planned",
			zap.Stringer("scheduleID", sched.ID),
			zap.Int("planned", len(stored)),
			zap.Int("skipped", len(scanTypes)-len(stored)))
	}

	return nil
}

func parseDate(field, value string) (time.Time, error) {
	d, err := gestation.ParseDate(value)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", field)
	}

	return d, nil
}

func parseCorrections(auaWeeks *int, correctedLMP string) (storage.ScheduleCorrections, error) {
	var corrections storage.ScheduleCorrections
	if auaWeeks != nil {
		if *auaWeeks < 0 {
			return corrections, serrors.With(serrors.ErrBadRequest, "AUA weeks must not be negative")
		}
		weeks := *auaWeeks
		corrections.AUAWeeks = &weeks
	}

	if strings.TrimSpace(correctedLMP) != "" {
		d, err := parseDate("corrected LMP date", correctedLMP)
		if err != nil {
			return corrections, err
		}
		corrections.CorrectedLMP = &d
	}

	return corrections, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// New creates a new Scheduler backed by the provided storage and configured
// with the given options.
func New(storage storage.Storage, options Options) Scheduler {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Notifier == nil {
		options.Notifier = notify.Log{}
	}
	if options.MeterProvider == nil {
		options.MeterProvider = otel.GetMeterProvider()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}

	counter, err := options.MeterProvider.Meter(instrumentationName).Int64Counter(
		"sonoplan.plans.calculated",
		metric.WithDescription("Number of scan plans calculated"),
		metric.WithUnit("{plan}"),
	)
	if err != nil {
		counter = noop.Int64Counter{}
	}

	return &scheduler{
		options:         options,
		storage:         storage,
		tracer:          options.TracerProvider.Tracer(instrumentationName),
		plansCalculated: counter,
	}
}
