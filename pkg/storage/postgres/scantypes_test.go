package postgres_test

import (
	"context"
	"sonoplan/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_ScanTypes_SeededDefaults(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	types, err := pg.ScanTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 4)

	names := make([]string, len(types))
	for i, st := range types {
		require.True(t, st.IsDefault)
		names[i] = st.Name
	}
	require.Equal(t, []string{"Dating Scan", "NT Scan", "Anomaly Scan", "Fetal Echo"}, names)
}

func TestPgSQL_StoreAndDeleteScanType(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	staff := domain.UserID(uuid.New())

	growth, err := pg.StoreScanType(ctx, domain.ScanType{
		Name:           "Growth Scan",
		WeekRangeStart: 28,
		WeekRangeEnd:   32,
		CreatedBy:      staff,
	})
	require.NoError(t, err)
	require.False(t, growth.IsDefault)
	require.Equal(t, staff, growth.CreatedBy)

	types, err := pg.ScanTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 5)
	require.Equal(t, "Growth Scan", types[4].Name, "ordered by start week")

	got, err := pg.ScanTypeByID(ctx, growth.ID)
	require.NoError(t, err)
	require.Equal(t, growth, got)

	deleted, err := pg.DeleteScanType(ctx, growth.ID)
	require.NoError(t, err)
	require.Equal(t, growth.ID, deleted.ID)

	missing, err := pg.ScanTypeByID(ctx, growth.ID)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteScanType_KeepsDefaults(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	types, err := pg.ScanTypes(ctx)
	require.NoError(t, err)

	deleted, err := pg.DeleteScanType(ctx, types[0].ID)
	require.NoError(t, err)
	require.Nil(t, deleted)

	still, err := pg.ScanTypeByID(ctx, types[0].ID)
	require.NoError(t, err)
	require.NotNil(t, still)
}
