package metrics_test

import (
	"context"
	"sonoplan/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("sonoplan.test.events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	require.Positive(t, testutil.CollectAndCount(reg, "sonoplan_test_events_total"))
}

func TestDefaultBuckets_Sorted(t *testing.T) {
	require.IsIncreasing(t, metrics.DefaultBuckets)
}
