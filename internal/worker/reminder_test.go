package worker_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sonoplan/internal/schedule"
	mockschedule "sonoplan/internal/schedule/mock"
	"sonoplan/internal/worker"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, ""); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func makeJob(id int64, reminderID domain.ReminderID) *river.Job[schedule.ReminderJobArgs] {
	return &river.Job[schedule.ReminderJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   schedule.ReminderJobArgs{ReminderID: reminderID},
	}
}

func TestReminderWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockschedule.NewMockScheduler(ctrl)
	w := worker.NewReminderWorker(mock, time.Minute)

	id := domain.ReminderID(uuid.New())
	mock.EXPECT().SendReminder(gomock.Any(), id).Return(&domain.Reminder{ID: id, SentAt: time.Now()}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, id)))
}

func TestReminderWorker_Work_NotFoundCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockschedule.NewMockScheduler(ctrl)
	w := worker.NewReminderWorker(mock, time.Minute)

	id := domain.ReminderID(uuid.New())
	mock.EXPECT().SendReminder(gomock.Any(), id).
		Return(nil, serrors.With(serrors.ErrNotFound, "reminder not found or already sent"))

	err := w.Work(context.Background(), makeJob(2, id))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestReminderWorker_Work_UnavailableSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockschedule.NewMockScheduler(ctrl)
	w := worker.NewReminderWorker(mock, 90*time.Second)

	id := domain.ReminderID(uuid.New())
	mock.EXPECT().SendReminder(gomock.Any(), id).
		Return(nil, serrors.With(serrors.ErrUnavailable, "notification channel down"))

	err := w.Work(context.Background(), makeJob(3, id))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 90*time.Second, snoozeErr.Duration)
}

func TestReminderWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockschedule.NewMockScheduler(ctrl)
	w := worker.NewReminderWorker(mock, 2*time.Minute)

	id := domain.ReminderID(uuid.New())
	mock.EXPECT().SendReminder(gomock.Any(), id).
		Return(nil, fmt.Errorf("could not send reminder: %w", serrors.With(serrors.ErrRateLimited, "slow down")))

	err := w.Work(context.Background(), makeJob(3, id))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 2*time.Minute, snoozeErr.Duration)
}

func TestReminderWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockschedule.NewMockScheduler(ctrl)
	w := worker.NewReminderWorker(mock, time.Minute)

	id := domain.ReminderID(uuid.New())
	boom := errors.New("boom")
	mock.EXPECT().SendReminder(gomock.Any(), id).Return(nil, boom)

	err := w.Work(context.Background(), makeJob(4, id))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestReminderWorker_Timeout(t *testing.T) {
	w := worker.NewReminderWorker(nil, time.Minute)

	require.Equal(t, 30*time.Second, w.Timeout(makeJob(5, domain.ReminderID(uuid.New()))))
}
