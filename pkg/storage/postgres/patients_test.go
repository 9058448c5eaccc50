package postgres_test

import (
	"context"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedPatient(t *testing.T, pg *postgres.PgSQL, fullName string, createdBy domain.UserID) *domain.Patient {
	t.Helper()
	ctx := context.Background()

	patient, err := pg.StorePatient(ctx, domain.Patient{FullName: fullName, CreatedBy: createdBy})
	require.NoError(t, err)
	require.NoError(t, pg.AssignRole(ctx, domain.UserID(patient.ID), domain.RolePatient))

	return patient
}

func TestPgSQL_StorePatient(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	staff := domain.UserID(uuid.New())

	stored, err := pg.StorePatient(ctx, domain.Patient{FullName: "Jane Doe", Phone: "+44 20 7946 0018", CreatedBy: staff})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, "Jane Doe", stored.FullName)
	require.Equal(t, "+44 20 7946 0018", stored.Phone)
	require.Equal(t, staff, stored.CreatedBy)
	require.False(t, stored.CreatedAt.IsZero())

	// profiles without the patient role are not patients
	got, err := pg.PatientByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, pg.AssignRole(ctx, domain.UserID(stored.ID), domain.RolePatient))
	require.NoError(t, pg.AssignRole(ctx, domain.UserID(stored.ID), domain.RolePatient), "assigning twice is a no-op")

	got, err = pg.PatientByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
}

func TestPgSQL_Patients(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	staffA := domain.UserID(uuid.New())
	staffB := domain.UserID(uuid.New())

	first := seedPatient(t, pg, "First", staffA)
	second := seedPatient(t, pg, "Second", staffA)
	third := seedPatient(t, pg, "Third", staffB)
	_, err := pg.StorePatient(ctx, domain.Patient{FullName: "Staff Profile", CreatedBy: staffA})
	require.NoError(t, err)

	all, err := pg.Patients(ctx, domain.UserID{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, third.ID, all[0].ID, "newest first")

	mine, err := pg.Patients(ctx, staffA)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.ElementsMatch(t, []domain.PatientID{first.ID, second.ID}, []domain.PatientID{mine[0].ID, mine[1].ID})

	count, err := pg.PatientCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestPgSQL_PatientByID_NotFound(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := pg.PatientByID(context.Background(), domain.PatientID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got)
}
