package controller_test

import (
	"net/http"
	"net/http/httptest"
	"sonoplan/pkg/controller"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := controller.NewMetrics(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/v1/patients/{id}/plan", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/patients/"+id+"/plan", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// one series for the matched pattern and one for the 404
	require.Equal(t, 2, testutil.CollectAndCount(reg, "sonoplan_http_request_duration_seconds"))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := controller.NewMetrics(reg)
	require.NoError(t, err)

	_, err = controller.NewMetrics(reg)
	require.Error(t, err)
}
