package domain

import (
	"time"

	"github.com/google/uuid"
)

// PatientID uniquely identifies a patient profile.
type PatientID uuid.UUID

// String returns the canonical UUID form.
func (id PatientID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id PatientID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the ID.
func (id *PatientID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Patient is a profile holding the patient role.
type Patient struct {
	// ID is the unique identifier of the patient.
	ID PatientID `json:"id"`
	// FullName is the display name of the patient.
	FullName string `json:"fullName"`
	// Phone is an optional contact number; empty when unknown.
	Phone string `json:"phone,omitempty"`
	// CreatedBy is the staff member who registered the patient; zero when unknown.
	CreatedBy UserID `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
