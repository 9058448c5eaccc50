package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"sonoplan/pkg/domain"
	"sonoplan/pkg/storage"
	"sonoplan/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countProfiles(t *testing.T, db *sql.DB, fullName string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM profiles WHERE full_name = $1`, fullName)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// nested transactions are not supported
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.SQLDB()
	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	committed, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = committed.StorePatient(ctx, domain.Patient{FullName: "Committed Patient"})
	require.NoError(t, err)
	require.Equal(t, 0, countProfiles(t, db, "Committed Patient"), "uncommitted rows must not be visible")
	require.NoError(t, committed.Commit())
	require.Equal(t, 1, countProfiles(t, db, "Committed Patient"))

	rolledBack, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = rolledBack.StorePatient(ctx, domain.Patient{FullName: "Discarded Patient"})
	require.NoError(t, err)
	require.NoError(t, rolledBack.Rollback())
	require.Equal(t, 0, countProfiles(t, db, "Discarded Patient"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.SQLDB()
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		patient, e := s.StorePatient(ctx, domain.Patient{FullName: "Ada"})
		if e != nil {
			return e //nolint: wrapcheck
		}

		return s.AssignRole(ctx, domain.UserID(patient.ID), domain.RolePatient) //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countProfiles(t, db, "Ada"))

	count, err := pg.PatientCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StorePatient(ctx, domain.Patient{FullName: "Grace"})

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countProfiles(t, db, "Grace"))
}

func TestPgSQL_WithTx_RollbackOnPanic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.Panics(t, func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, _ = s.StorePatient(ctx, domain.Patient{FullName: "Panicking Patient"})

			panic("boom")
		})
	})
	require.Equal(t, 0, countProfiles(t, pg.SQLDB(), "Panicking Patient"))

	// the pool is still usable after the rollback
	count, err := pg.PatientCount(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}
