package postgres_test

import (
	"context"
	"os"
	root "sonoplan"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/storage/postgres"
	"strconv"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "sonoplan_test"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, "error"); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// setupTestDB starts a throwaway PostgreSQL, applies the embedded migrations
// and returns a connected storage.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase(testDB),
		tcpostgres.WithUsername(testUser),
		tcpostgres.WithPassword(testPassword),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               host,
		Port:               portNum,
		Database:           testDB,
		SslMode:            "disable",
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
	})
	require.NoError(t, err)

	goose.SetBaseFS(root.Migrations)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, pgSQL.SQLDB(), "migrations"))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = container.Terminate(ctx)
	}
}

func TestNew_UnreachableDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := postgres.New(ctx, postgres.Options{
		Username: testUser,
		Password: "p@ss/word",
		Host:     "127.0.0.1",
		Port:     1,
		Database: testDB,
		SslMode:  "disable",
	})
	require.ErrorContains(t, err, "could not ping database")
}
