package storage

import (
	"context"
	"sonoplan/pkg/domain"
)

// ScanTypeStorage persists scan type definitions.
type ScanTypeStorage interface {
	// StoreScanType inserts a scan type and returns it with generated fields populated.
	StoreScanType(ctx context.Context, scanType domain.ScanType) (*domain.ScanType, error)
	// ScanTypes lists every scan type ordered by week_range_start, then name.
	ScanTypes(ctx context.Context) ([]domain.ScanType, error)
	// ScanTypeByID returns the scan type with the given ID, or nil when not found.
	ScanTypeByID(ctx context.Context, id domain.ScanTypeID) (*domain.ScanType, error)
	// DeleteScanType removes a non-default scan type and returns the deleted row.
	// It returns nil when no such row exists or the row is a default scan type.
	DeleteScanType(ctx context.Context, id domain.ScanTypeID) (*domain.ScanType, error)
}
