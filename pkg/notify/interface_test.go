package notify_test

import (
	"context"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/notify"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog_Notify(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	n := notify.Notification{
		ReminderID:   domain.ReminderID(uuid.New()),
		PatientID:    domain.PatientID(uuid.New()),
		ReminderDate: "2024-02-12",
		Message:      "Dating Scan is recommended on 19-Feb-2024 (12-Feb-2024 to 26-Feb-2024)",
	}
	require.NoError(t, notify.Log{}.Notify(ctx, n))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "scan reminder: "+n.Message, entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, n.ReminderID.String(), fields["reminderID"])
	require.Equal(t, "2024-02-12", fields["reminderDate"])
}
