package worker

import (
	"context"
	"errors"
	"fmt"
	"sonoplan/internal/schedule"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ReminderWorker is a River worker that delivers scan reminders through a
// schedule.Scheduler. Jobs are scheduled at the reminder date when the
// schedule is stored, so by the time Work runs the reminder is due.
//
// Error handling: if the reminder no longer exists or was already sent, for
// example because its schedule was deleted or rewritten, the job is canceled.
// If delivery is temporarily unavailable or rate limited the job is snoozed. Other errors are
// logged and returned so River retries with its default backoff.
type ReminderWorker struct {
	river.WorkerDefaults[schedule.ReminderJobArgs]

	scheduler schedule.Scheduler
	// snooze is how long an unavailable or rate limited delivery is deferred.
	snooze time.Duration
}

// NewReminderWorker constructs a ReminderWorker using the provided scheduler.
func NewReminderWorker(scheduler schedule.Scheduler, snooze time.Duration) *ReminderWorker {
	return &ReminderWorker{
		scheduler: scheduler,
		snooze:    snooze,
	}
}

// Work delivers a single reminder and maps errors to River actions.
func (w *ReminderWorker) Work(ctx context.Context, job *river.Job[schedule.ReminderJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("reminderID", job.Args.ReminderID))

	if _, err := w.scheduler.SendReminder(ctx, job.Args.ReminderID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Info(ctx, "reminder is gone or already sent, canceling job")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in sending reminder", zap.Error(err))

		if serrors.IsTemporary(err) {
			return river.JobSnooze(w.snooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not send reminder: %w", err)
	}

	return nil
}

// Timeout bounds a single delivery attempt.
func (w *ReminderWorker) Timeout(*river.Job[schedule.ReminderJobArgs]) time.Duration {
	return 30 * time.Second
}
