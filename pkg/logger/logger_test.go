package logger_test

import (
	"context"
	"sonoplan/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
	}{
		{
			name:        "development defaults to debug",
			environment: logger.DevelopmentEnvironment,
			debug:       true,
		},
		{
			name:        "production defaults to info",
			environment: logger.ProductionEnvironment,
			debug:       false,
		},
		{
			name:        "explicit level overrides environment",
			environment: logger.DevelopmentEnvironment,
			level:       "warn",
			debug:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Setup(tt.environment, tt.level))

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	require.Error(t, logger.Setup(logger.DevelopmentEnvironment, "loud"))
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	customLogger := zap.NewExample()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("patientID", "p-1"))
	logger.Info(ctx, "plan calculated", zap.Int("scans", 4))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "plan calculated", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "p-1", fields["patientID"])
	require.EqualValues(t, 4, fields["scans"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Equal(t, 4, logs.Len())
	require.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}
