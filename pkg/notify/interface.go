// Package notify defines how due scan reminders leave the system. The
// scheduler hands every reminder to a Notifier inside the transaction that
// marks it sent, so a failed delivery is rolled back and retried.
package notify

import (
	"context"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// Notification is a reminder ready for delivery.
type Notification struct {
	ReminderID   domain.ReminderID `json:"reminderId"`
	ScheduleID   domain.ScheduleID `json:"scheduleId"`
	PatientID    domain.PatientID  `json:"patientId"`
	ReminderDate string            `json:"reminderDate"`
	Message      string            `json:"message"`
	SentAt       time.Time         `json:"sentAt"`
}

// Notifier delivers notifications. Implementations report temporary
// failures with serrors.ErrUnavailable or serrors.ErrRateLimited.
//
//go:generate mockgen -package mocknotify -source=interface.go -destination=mock/mocknotify.go *
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Log is a Notifier that writes notifications to the context logger. It is
// used when no delivery channel is configured.
type Log struct{}

func (Log) Notify(ctx context.Context, n Notification) error {
	logger.Info(ctx, "scan reminder: "+n.Message,
		zap.Stringer("reminderID", n.ReminderID),
		zap.Stringer("patientID", n.PatientID),
		zap.String("reminderDate", n.ReminderDate))

	return nil
}

var _ Notifier = Log{}
