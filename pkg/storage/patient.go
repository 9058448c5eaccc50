package storage

import (
	"context"
	"sonoplan/pkg/domain"
)

// PatientStorage persists patient profiles and user roles.
type PatientStorage interface {
	// StorePatient inserts a profile and returns it with generated fields populated.
	StorePatient(ctx context.Context, patient domain.Patient) (*domain.Patient, error)
	// AssignRole grants role to the user. Assigning a role the user already holds is a no-op.
	AssignRole(ctx context.Context, userID domain.UserID, role domain.Role) error
	// Patients lists profiles holding the patient role, newest first. A non-zero
	// createdBy restricts the result to patients registered by that staff member.
	Patients(ctx context.Context, createdBy domain.UserID) ([]domain.Patient, error)
	// PatientByID returns the patient with the given ID, or nil when not found.
	PatientByID(ctx context.Context, id domain.PatientID) (*domain.Patient, error)
	// PatientCount returns the number of profiles holding the patient role.
	PatientCount(ctx context.Context) (int64, error)
}
