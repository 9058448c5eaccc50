package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues River jobs in the storage's database, so a job commits
// or rolls back with the rows written next to it. Reminder jobs use
// opts.ScheduledAt to wait for their reminder date:
//
//	_, err := tx.AddJob(ctx, schedule.ReminderJobArgs{ReminderID: id}, &river.InsertOpts{ScheduledAt: due})
type JobStorage interface {
	// AddJob reports false when River skipped the job as a unique duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
