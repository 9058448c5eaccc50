package postgres

import (
	"context"
	"fmt"
	"sonoplan/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scanTypesTable = "scan_types"
)

func (p *PgSQL) StoreScanType(ctx context.Context, scanType domain.ScanType) (*domain.ScanType, error) {
	var row PgScanType
	row.FromDomain(scanType)

	var stored PgScanType
	if _, err := p.Builder.Insert(scanTypesTable).
		Rows(row).
		Returning(&PgScanType{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store scan type into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ScanTypes(ctx context.Context) ([]domain.ScanType, error) {
	var rows []PgScanType
	if err := p.Builder.From(scanTypesTable).
		Order(goqu.I("week_range_start").Asc(), goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scan types from pg: %w", err)
	}

	return pgScanTypesToDomain(rows), nil
}

func (p *PgSQL) ScanTypeByID(ctx context.Context, id domain.ScanTypeID) (*domain.ScanType, error) {
	var row PgScanType
	found, err := p.Builder.From(scanTypesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan type by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteScanType never removes default scan types.
func (p *PgSQL) DeleteScanType(ctx context.Context, id domain.ScanTypeID) (*domain.ScanType, error) {
	var row PgScanType
	found, err := p.Builder.Delete(scanTypesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("is_default").IsFalse(),
		).
		Returning(&PgScanType{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete scan type in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
