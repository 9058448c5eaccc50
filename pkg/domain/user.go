package domain

import "github.com/google/uuid"

// UserID identifies a staff member (superadmin, admin or subadmin) acting on the system.
type UserID uuid.UUID

// IsZero reports whether the ID is unset.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// String returns the canonical UUID form.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the ID.
func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Role is the application role assigned to a user.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleSubAdmin   Role = "subadmin"
	RolePatient    Role = "patient"
)
