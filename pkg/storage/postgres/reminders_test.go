package postgres_test

import (
	"context"
	"sonoplan/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Reminders(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	patient := seedPatient(t, pg, "Jane", domain.UserID{})
	schedule := seedSchedule(t, pg, patient.ID, date(t, "2024-01-01"))
	types, err := pg.ScanTypes(ctx)
	require.NoError(t, err)

	empty, err := pg.StoreReminders(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	stored, err := pg.StoreReminders(ctx,
		domain.Reminder{ScheduleID: schedule.ID, ScanTypeID: types[1].ID, ReminderDate: date(t, "2024-03-18"), Message: "NT Scan"},
		domain.Reminder{ScheduleID: schedule.ID, ScanTypeID: types[0].ID, ReminderDate: date(t, "2024-02-12"), Message: "Dating Scan"},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	list, err := pg.Reminders(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Dating Scan", list[0].Message, "ordered by date")
	require.True(t, list[0].SentAt.IsZero())

	sentAt := time.Date(2024, time.February, 12, 9, 0, 0, 0, time.UTC)
	sent, err := pg.MarkReminderSent(ctx, list[0].ID, sentAt, domain.UserID{})
	require.NoError(t, err)
	require.NotNil(t, sent)
	require.True(t, sentAt.Equal(sent.SentAt))

	again, err := pg.MarkReminderSent(ctx, list[0].ID, sentAt, domain.UserID{})
	require.NoError(t, err)
	require.Nil(t, again, "already sent")

	removed, err := pg.DeleteUnsentReminders(ctx, schedule.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	got, err := pg.ReminderByID(ctx, list[1].ID)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = pg.ReminderByID(ctx, list[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got, "sent reminders are kept")
}

func TestPgSQL_Reminders_CascadeOnScheduleDelete(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	patient := seedPatient(t, pg, "Jane", domain.UserID{})
	schedule := seedSchedule(t, pg, patient.ID, date(t, "2024-01-01"))
	types, err := pg.ScanTypes(ctx)
	require.NoError(t, err)

	stored, err := pg.StoreReminders(ctx, domain.Reminder{
		ScheduleID:   schedule.ID,
		ScanTypeID:   types[0].ID,
		ReminderDate: date(t, "2024-02-12"),
		Message:      "Dating Scan",
	})
	require.NoError(t, err)

	_, err = pg.DeleteSchedule(ctx, schedule.ID)
	require.NoError(t, err)

	got, err := pg.ReminderByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)

	missing, err := pg.MarkReminderSent(ctx, domain.ReminderID(uuid.New()), time.Now(), domain.UserID{})
	require.NoError(t, err)
	require.Nil(t, missing)
}
