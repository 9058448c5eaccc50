package controller

import (
	"context"
	"net"
	"net/http"
	"sonoplan/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"go.uber.org/zap"
)

// UserIDHeader carries the acting staff member, set by the upstream gateway.
const UserIDHeader = "X-User-Id"

// statusRecorder remembers the status written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// GetClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then the
// host part of RemoteAddr.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}
	if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); xrip != "" {
		return xrip
	}

	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}

	return r.RemoteAddr
}

// CtxKey types the request context keys set by this package.
type CtxKey string

// RequestIDKey holds the request ID, from X-Request-Id or generated.
const RequestIDKey CtxKey = "RequestID"

// userAgentFields parses the User-Agent header into browser and platform fields.
func userAgentFields(raw string) []zap.Field {
	if raw == "" {
		return nil
	}

	ua := useragent.New(raw)
	browser, version := ua.Browser()

	return []zap.Field{
		zap.String("browser", browser),
		zap.String("browser_version", version),
		zap.String("os", ua.OS()),
		zap.Bool("mobile", ua.Mobile()),
		zap.Bool("bot", ua.Bot()),
	}
}

// WithLogger gives every request a logger tagged with its request ID, and the
// acting user from UserIDHeader when sent, and writes one access log entry
// once the handler returns.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, RequestIDKey, requestID)

		fields := []zap.Field{zap.String(string(RequestIDKey), requestID)}
		if userID := r.Header.Get(UserIDHeader); userID != "" {
			fields = append(fields, zap.String("userID", userID))
		}
		ctx = logger.WithFields(ctx, fields...)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "Access log", append([]zap.Field{
			zap.Int("status_code", rec.status),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("url", r.URL.String()),
			zap.String("referer", r.Referer()),
			zap.String("method", r.Method),
		}, userAgentFields(r.UserAgent())...)...)
	})
}
