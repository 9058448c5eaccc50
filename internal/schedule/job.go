package schedule

import (
	"sonoplan/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ReminderJobArgs contains the arguments of a scan reminder job submitted to River.
// One job is enqueued per stored reminder and scheduled at its reminder date.
type ReminderJobArgs struct {
	// ReminderID is the reminder to deliver. It is marked as unique so River
	// keeps a single job per reminder according to InsertOpts.UniqueOpts.
	ReminderID domain.ReminderID `json:"reminderId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry delivery.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the reminder worker.
func (args ReminderJobArgs) Kind() string { return "ScanReminderJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args ReminderJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
