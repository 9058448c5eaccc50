// Package serrors provides semantic error kinds shared by the service and
// transport layers. Services wrap failures with a Kind; the HTTP layer maps
// the Kind to a status code and the worker decides between retrying and
// snoozing, neither of them inspecting messages.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only NewKind creates kinds, so a Kind in
// an error chain always names one of the categories below or one declared
// with NewKind elsewhere.
type Kind interface {
	error
	// Temporary reports whether the same operation may succeed later without
	// any change on the caller's side.
	Temporary() bool
	isKind()
}

type kind struct {
	name      string
	temporary bool
}

func (k kind) Error() string   { return k.name }
func (k kind) Temporary() bool { return k.temporary }
func (k kind) isKind()         {}

// NewKind declares a permanent kind. Kinds compare by value and match with
// errors.Is through Error.
func NewKind(name string) Kind { return kind{name: name} }

// NewTemporaryKind declares a kind whose errors are worth retrying.
func NewTemporaryKind(name string) Kind { return kind{name: name, temporary: true} }

var (
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized is returned when the caller identity is missing or malformed.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden is returned when the target refuses the operation, e.g. deleting a default scan type.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest is returned for invalid input such as an unparsable LMP date.
	ErrBadRequest = NewKind("BAD_REQUEST")
	ErrConflict   = NewKind("CONFLICT")
	// ErrInternal is what KindOf reports for errors that carry no kind.
	ErrInternal = NewKind("INTERNAL")

	ErrTimeout = NewTemporaryKind("TIMEOUT")
	// ErrUnavailable is returned when a dependency, such as the notification webhook, is down.
	ErrUnavailable = NewTemporaryKind("UNAVAILABLE")
	// ErrRateLimited is returned when a dependency asks us to slow down.
	ErrRateLimited = NewTemporaryKind("RATE_LIMITED")
)

// Error attaches a Kind and a client-facing message to an optional cause.
// errors.Is and errors.As match both the kind and anything in the cause chain.
//
// Error() renders "msg: cause", falling back to whichever part is set and
// finally to the kind name.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k around cause with a formatted message.
func Wrap(k Kind, cause error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns an error carrying nothing but k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.cause != nil && errors.Is(e.cause, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.cause != nil && errors.As(e.cause, target))
}

// Kind may be nil for an Error built as a zero value.
func (e *Error) Kind() Kind { return e.kind }

// Message is the client-facing text, without the cause.
func (e *Error) Message() string { return e.msg }

// Cause may be nil.
func (e *Error) Cause() error { return e.cause }

// KindOf returns the first Kind in err's chain, or ErrInternal when there is none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the message of the outermost *Error in err's chain that
// has one, or "" when there is none.
func MessageOf(err error) string {
	for err != nil {
		var se *Error
		if !errors.As(err, &se) {
			return ""
		}
		if se.msg != "" {
			return se.msg
		}
		err = se.cause
	}

	return ""
}

// IsTemporary reports whether err carries a temporary Kind.
func IsTemporary(err error) bool {
	return err != nil && KindOf(err).Temporary()
}
