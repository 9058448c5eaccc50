package v1handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sonoplan/internal/schedule"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/serrors"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the size of a JSON request body.
const maxBodyBytes = 1 << 20

// Deps holds the services the v1 handlers call into.
type Deps struct {
	Scheduler schedule.Scheduler
	// Now returns the current time used by reports. Defaults to time.Now.
	Now func() time.Time
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Handler{deps: deps}
}

// Routes returns the v1 router. Paths are relative to the mount point.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(WithUserID)

	r.Route("/patients", func(r chi.Router) {
		r.Post("/", h.CreatePatient)
		r.Get("/", h.ListPatients)
		r.Get("/{id}/plan", h.GetPlan)
		r.Post("/{id}/reschedule", h.Reschedule)
	})
	r.Route("/schedules", func(r chi.Router) {
		r.Post("/", h.CreateSchedule)
		r.Get("/", h.ListSchedules)
		r.Put("/{id}", h.UpdateSchedule)
		r.Delete("/{id}", h.DeleteSchedule)
	})
	r.Route("/scan-types", func(r chi.Router) {
		r.Get("/", h.ListScanTypes)
		r.Post("/", h.CreateScanType)
		r.Delete("/{id}", h.DeleteScanType)
	})
	r.Post("/calculate", h.Calculate)
	r.Get("/reports", h.GetReport)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusMethodNotAllowed, Error{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method " + r.Method + " not allowed",
		})
	})

	return r
}

// Error is the JSON body of every error response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an error body with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// NewError maps err to an HTTP status and a client-safe body. Messages of
// semantic errors are exposed; anything else is reported as an internal error.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = defaultMessage(kind)
	}

	status := statusOf(kind)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: Error{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func statusOf(k serrors.Kind) int {
	switch k {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func defaultMessage(k serrors.Kind) string {
	switch k {
	case serrors.ErrNotFound:
		return "resource not found"
	case serrors.ErrBadRequest:
		return "bad request"
	case serrors.ErrUnauthorized:
		return "unauthorized"
	case serrors.ErrForbidden:
		return "forbidden"
	case serrors.ErrConflict:
		return "conflict"
	case serrors.ErrRateLimited:
		return "too many requests"
	case serrors.ErrUnavailable:
		return "service unavailable"
	case serrors.ErrTimeout:
		return "request timed out"
	default:
		return "internal error"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decodeJSON reads a single JSON object from the request body into dst.
// Unknown fields are rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if dec.More() {
		return serrors.With(serrors.ErrBadRequest, "invalid request body: unexpected trailing data")
	}

	return nil
}

// pathID parses the {id} URL parameter into one of the domain ID types.
func pathID[T any, PT interface {
	*T
	UnmarshalText([]byte) error
}](r *http.Request) (T, error) {
	var id T
	if err := PT(&id).UnmarshalText([]byte(chi.URLParam(r, "id"))); err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id %q", chi.URLParam(r, "id"))
	}

	return id, nil
}

// queryID parses an optional UUID query parameter. An absent parameter yields the zero ID.
func queryID[T any, PT interface {
	*T
	UnmarshalText([]byte) error
}](r *http.Request, name string) (T, error) {
	var id T
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return id, nil
	}
	if err := PT(&id).UnmarshalText([]byte(raw)); err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s %q", name, raw)
	}

	return id, nil
}
