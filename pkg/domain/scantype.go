package domain

import (
	"sonoplan/pkg/gestation"
	"time"

	"github.com/google/uuid"
)

// ScanTypeID uniquely identifies a scan type.
type ScanTypeID uuid.UUID

// String returns the canonical UUID form.
func (id ScanTypeID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id ScanTypeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the ID.
func (id *ScanTypeID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ScanType is a configurable, named gestational week window (e.g. "Dating Scan", weeks 6-8).
type ScanType struct {
	ID             ScanTypeID `json:"id"`
	Name           string     `json:"name"`
	WeekRangeStart int        `json:"weekRangeStart"`
	WeekRangeEnd   int        `json:"weekRangeEnd"`
	// IsDefault marks the seeded scan types, which cannot be deleted.
	IsDefault bool `json:"isDefault"`
	// CreatedBy is zero for seeded scan types.
	CreatedBy UserID    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Definition converts the scan type into the calculator input.
func (s ScanType) Definition() gestation.Definition {
	return gestation.Definition{
		Name:           s.Name,
		WeekRangeStart: s.WeekRangeStart,
		WeekRangeEnd:   s.WeekRangeEnd,
	}
}

// Definitions converts scan types into calculator inputs, preserving order.
func Definitions(scanTypes []ScanType) []gestation.Definition {
	out := make([]gestation.Definition, len(scanTypes))
	for i := range scanTypes {
		out[i] = scanTypes[i].Definition()
	}

	return out
}
