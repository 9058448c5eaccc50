package postgres

import (
	"context"
	"fmt"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	schedulesTable = "patient_scans"
)

func (p *PgSQL) StoreSchedule(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error) {
	var row PgSchedule
	row.FromDomain(schedule)

	var stored PgSchedule
	if _, err := p.Builder.Insert(schedulesTable).
		Rows(row).
		Returning(&PgSchedule{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store schedule into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

// UpdateSchedule rewrites the LMP and due date, and the corrections when provided.
func (p *PgSQL) UpdateSchedule(ctx context.Context,
	id domain.ScheduleID,
	updates storage.ScheduleUpdates) (*domain.Schedule, error) {
	rec := goqu.Record{
		"lmp_date":   updates.LMPDate,
		"edd_date":   updates.EDDDate,
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Corrections != nil {
		rec["aua_weeks"] = nullInt(updates.Corrections.AUAWeeks)
		rec["corrected_lmp"] = nullTime(updates.Corrections.CorrectedLMP)
	}

	var row PgSchedule
	found, err := p.Builder.Update(schedulesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgSchedule{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update schedule in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteSchedule hard deletes the schedule. Reminders are removed by the foreign key cascade.
func (p *PgSQL) DeleteSchedule(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error) {
	var row PgSchedule
	found, err := p.Builder.Delete(schedulesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgSchedule{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete schedule in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ScheduleByID(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error) {
	var row PgSchedule
	found, err := p.Builder.From(schedulesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch schedule by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LatestScheduleByPatient(ctx context.Context, patientID domain.PatientID) (*domain.Schedule, error) {
	var row PgSchedule
	found, err := p.Builder.From(schedulesTable).
		Where(goqu.I("patient_id").Eq(uuid.UUID(patientID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest schedule of patient: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Schedules(ctx context.Context, filter storage.ScheduleFilter) ([]domain.Schedule, error) {
	ds := p.Builder.From(schedulesTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if filter.PatientID != (domain.PatientID{}) {
		ds = ds.Where(goqu.I("patient_id").Eq(uuid.UUID(filter.PatientID)))
	}
	if !filter.CreatedBy.IsZero() {
		ds = ds.Where(goqu.I("created_by").Eq(uuid.UUID(filter.CreatedBy)))
	}

	var rows []PgSchedule
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch schedules from pg: %w", err)
	}

	return pgSchedulesToDomain(rows), nil
}

// ScheduleCounts counts schedules in a single scan. A schedule is upcoming when
// its due date is strictly after the calendar day of now.
func (p *PgSQL) ScheduleCounts(ctx context.Context, now time.Time) (storage.ScheduleCounts, error) {
	var counts struct {
		Total    int64 `db:"total"`
		Upcoming int64 `db:"upcoming"`
	}
	_, err := p.Builder.From(schedulesTable).
		Select(
			goqu.COUNT(goqu.Star()).As("total"),
			goqu.L("COUNT(*) FILTER (WHERE edd_date > ?)", asDate(now)).As("upcoming"),
		).
		Executor().ScanStructContext(ctx, &counts)
	if err != nil {
		return storage.ScheduleCounts{}, fmt.Errorf("could not count schedules in pg: %w", err)
	}

	return storage.ScheduleCounts{Total: counts.Total, Upcoming: counts.Upcoming}, nil
}
