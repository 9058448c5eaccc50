package serrors_test

import (
	"errors"
	"fmt"
	"sonoplan/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "patient %s has no schedule", "p-1")
	require.Equal(t, "patient p-1 has no schedule", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "loading scan types")
	require.Equal(t, "loading scan types: connection refused", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "invalid LMP date")

	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "invalid LMP date")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrBadRequest, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrForbidden, base, "default scan types cannot be deleted")
	require.Equal(t, serrors.ErrForbidden, e.Kind())
	require.Equal(t, "default scan types cannot be deleted", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("could not create schedule: %w", serrors.With(serrors.ErrNotFound, "patient not found"))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.ErrConflict))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
}

func TestMessageOf(t *testing.T) {
	inner := serrors.Wrap(serrors.ErrBadRequest, errors.New("parsing time"), "invalid LMP date")
	require.Equal(t, "invalid LMP date", serrors.MessageOf(fmt.Errorf("could not create schedule: %w", inner)))

	// a message-less wrapper defers to the message below it
	require.Equal(t, "invalid LMP date", serrors.MessageOf(serrors.Wrap(serrors.ErrBadRequest, inner, "")))

	require.Empty(t, serrors.MessageOf(serrors.KindOnly(serrors.ErrNotFound)))
	require.Empty(t, serrors.MessageOf(errors.New("plain")))
	require.Empty(t, serrors.MessageOf(nil))
}

func TestIsTemporary(t *testing.T) {
	for _, k := range []serrors.Kind{serrors.ErrUnavailable, serrors.ErrRateLimited, serrors.ErrTimeout} {
		require.True(t, serrors.IsTemporary(fmt.Errorf("send: %w", serrors.KindOnly(k))), "kind %v", k)
	}
	for _, k := range []serrors.Kind{serrors.ErrNotFound, serrors.ErrBadRequest, serrors.ErrInternal} {
		require.False(t, serrors.IsTemporary(serrors.KindOnly(k)), "kind %v", k)
	}
	require.False(t, serrors.IsTemporary(errors.New("plain")))
	require.False(t, serrors.IsTemporary(nil))
}
