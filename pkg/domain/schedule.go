package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleID uniquely identifies a pregnancy schedule.
type ScheduleID uuid.UUID

// String returns the canonical UUID form.
func (id ScheduleID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id ScheduleID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the ID.
func (id *ScheduleID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Schedule is a patient's pregnancy record from which scan dates are derived.
// EDDDate is always LMPDate plus 280 days; the service rewrites it on every LMP change.
type Schedule struct {
	// ID is the unique identifier of the schedule.
	ID ScheduleID `json:"id"`
	// PatientID is the patient the schedule belongs to.
	PatientID PatientID `json:"patientId"`

	// LMPDate is the first day of the last menstrual period.
	LMPDate time.Time `json:"lmpDate"`
	// EDDDate is the estimated due date derived from LMPDate.
	EDDDate time.Time `json:"eddDate"`
	// AUAWeeks is the ultrasound-assessed gestational age in weeks, when recorded.
	AUAWeeks *int `json:"auaWeeks,omitempty"`
	// CorrectedLMP is an LMP corrected after an ultrasound, when recorded.
	CorrectedLMP *time.Time `json:"correctedLmp,omitempty"`

	// CreatedBy is the staff member who created the schedule; zero when unknown.
	CreatedBy UserID `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
