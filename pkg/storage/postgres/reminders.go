package postgres

import (
	"context"
	"fmt"
	"sonoplan/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	remindersTable = "reminders"
)

func (p *PgSQL) StoreReminders(ctx context.Context, reminders ...domain.Reminder) ([]domain.Reminder, error) {
	if len(reminders) == 0 {
		return nil, nil
	}

	rows := make([]PgReminder, len(reminders))
	for i := range reminders {
		rows[i].FromDomain(reminders[i])
	}

	var stored []PgReminder
	if err := p.Builder.Insert(remindersTable).
		Rows(rows).
		Returning(&PgReminder{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store reminders into pg: %w", err)
	}

	return pgRemindersToDomain(stored), nil
}

func (p *PgSQL) DeleteUnsentReminders(ctx context.Context, scheduleID domain.ScheduleID) (int64, error) {
	res, err := p.Builder.Delete(remindersTable).
		Where(
			goqu.I("patient_scan_id").Eq(uuid.UUID(scheduleID)),
			goqu.I("sent_at").IsNull(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete unsent reminders in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read deleted reminder count: %w", err)
	}

	return n, nil
}

func (p *PgSQL) ReminderByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error) {
	var row PgReminder
	found, err := p.Builder.From(remindersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch reminder by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// MarkReminderSent only touches unsent rows, so concurrent senders cannot both succeed.
func (p *PgSQL) MarkReminderSent(ctx context.Context,
	id domain.ReminderID,
	sentAt time.Time,
	sentBy domain.UserID) (*domain.Reminder, error) {
	var row PgReminder
	found, err := p.Builder.Update(remindersTable).
		Set(goqu.Record{
			"sent_at": sentAt,
			"sent_by": nullUserID(sentBy),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("sent_at").IsNull(),
		).
		Returning(&PgReminder{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark reminder as sent in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Reminders(ctx context.Context, scheduleID domain.ScheduleID) ([]domain.Reminder, error) {
	var rows []PgReminder
	if err := p.Builder.From(remindersTable).
		Where(goqu.I("patient_scan_id").Eq(uuid.UUID(scheduleID))).
		Order(goqu.I("reminder_date").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch reminders from pg: %w", err)
	}

	return pgRemindersToDomain(rows), nil
}
