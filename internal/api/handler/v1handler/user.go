package v1handler

import (
	"context"
	"net/http"
	"sonoplan/pkg/controller"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/serrors"
	"strings"
)

type userIDKey struct{}

// WithUserID stores the acting staff member from the X-User-Id header in the
// request context. The header is supplied by the gateway in front of the
// service and is not verified here; an absent header leaves the zero ID.
// A header that is not a UUID is rejected with 401.
func WithUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(controller.UserIDHeader))
		if raw == "" {
			next.ServeHTTP(w, r)

			return
		}

		var userID domain.UserID
		if err := userID.UnmarshalText([]byte(raw)); err != nil {
			writeError(w, r,
				serrors.Wrap(serrors.ErrUnauthorized, err, "invalid %s header", controller.UserIDHeader))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

// GetUserIDFromContext returns the acting user stored by WithUserID, or the zero ID.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(userIDKey{}).(domain.UserID)

	return userID
}
