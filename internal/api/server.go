// Package api assembles the HTTP server of the scan scheduling service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"sonoplan/internal/api/handler/v1handler"
	"sonoplan/internal/config"
	"sonoplan/pkg/controller"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

//go:embed specs/v1.yaml
var v1Spec []byte

const (
	specPath = "/specs/v1.yaml"
	docsPath = "/v1/docs/"

	timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`
)

// Options are the listener and timeout settings of the server. Zero durations
// leave the net/http defaults in place, except RequestTimeout.
type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds the handler chain; slower requests get a TIMEOUT body.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	MetricsPath    string
}

// NewOptions copies the HTTP section of cfg.
func NewOptions(cfg *config.Config) Options {
	h := cfg.HTTP

	return Options{
		Addr:              h.Addr,
		ReadTimeout:       h.ReadTimeout,
		ReadHeaderTimeout: h.ReadHeaderTimeout,
		WriteTimeout:      h.WriteTimeout,
		IdleTimeout:       h.IdleTimeout,
		RequestTimeout:    h.RequestTimeout,
		MaxHeaderBytes:    h.MaxHeaderBytes,
		MetricsPath:       h.MetricsPath,
	}
}

// Deps are the collaborators of the server.
type Deps struct {
	v1handler.Deps

	// Registerer receives the HTTP request metrics. Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	// Gatherer backs the metrics endpoint. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewServer builds the HTTP server: the /v1 API, its OpenAPI document and
// Swagger UI, Prometheus metrics and pprof, all behind request metrics, CORS,
// access logging and a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	requestMetrics, err := controller.NewMetrics(deps.Registerer)
	if err != nil {
		return nil, fmt.Errorf("could not register request metrics: %w", err)
	}

	r := chi.NewRouter()
	r.Use(requestMetrics.Middleware)

	r.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	r.Get(specPath, serveSpec)
	r.Handle(docsPath+"*", v5emb.New("SonoPlan API", specPath, docsPath))
	r.Mount("/v1", v1handler.New(deps.Deps).Routes())
	r.Mount(controller.PprofPath, controller.PprofMux())

	handler := controller.WithLogger(controller.WithCORS(r))

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func serveSpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(v1Spec)
}
