// Package serrors attaches a semantic kind to errors. The kind decides the
// HTTP status and public code of a failed request while the wrapped cause is
// kept for logs.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Kinds are sentinels: compare them with
// == or errors.Is.
type Kind interface {
	error
	// Status is the HTTP status code requests failing with this kind answer with.
	Status() int
	// Public is the message shown to clients when the error carries none.
	Public() string
}

type kind struct {
	code   string
	status int
	public string
}

func (k *kind) Error() string  { return k.code }
func (k *kind) Status() int    { return k.status }
func (k *kind) Public() string { return k.public }

// NewKind registers a new category. Every call returns a distinct sentinel,
// even for equal codes.
func NewKind(code string, status int, public string) Kind {
	return &kind{code: code, status: status, public: public}
}

var (
	ErrNotFound     = NewKind("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	// ErrForbidden means the caller is known but lacks the role for the operation.
	ErrForbidden  = NewKind("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest, "bad request")
	ErrConflict   = NewKind("CONFLICT", http.StatusConflict, "conflict")
	// ErrPaymentRequired means the account ran out of scans or seats for its plan.
	ErrPaymentRequired = NewKind("PAYMENT_REQUIRED", http.StatusPaymentRequired, "payment required")
	ErrTooLarge        = NewKind("TOO_LARGE", http.StatusRequestEntityTooLarge, "payload too large")
	ErrInternal        = NewKind("INTERNAL", http.StatusInternalServerError, "internal error")
	ErrTimeout         = NewKind("TIMEOUT", http.StatusGatewayTimeout, "request timed out")
	ErrUnavailable     = NewKind("UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	ErrRateLimited     = NewKind("RATE_LIMITED", http.StatusTooManyRequests, "too many requests")
)

// Error carries a kind, an optional client facing message and an optional
// cause. errors.Is and errors.As see through to both the kind and the cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k whose message is shown to clients.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap is With plus a cause that only ends up in logs.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var s string
	switch {
	case e.msg != "":
		s = e.msg
	case e.err == nil && e.kind != nil:
		return e.kind.Error()
	case e.err == nil:
		return "unknown error"
	}
	if e.err != nil {
		if s != "" {
			s += ": "
		}
		s += e.err.Error()
	}

	return s
}

func (e *Error) Unwrap() []error {
	var errs []error
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.err != nil {
		errs = append(errs, e.err)
	}

	return errs
}

// Kind returns the kind the error was created with.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client facing message, empty for KindOnly errors.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost kind in err's chain, or ErrInternal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// HTTPStatus is the status code of KindOf(err).
func HTTPStatus(err error) int {
	return KindOf(err).Status()
}

// PublicMessage returns what a client may see about err. Internal errors never
// expose their message.
func PublicMessage(err error) string {
	k := KindOf(err)
	var se *Error
	if k != ErrInternal && errors.As(err, &se) && se.Message() != "" {
		return se.Message()
	}

	return k.Public()
}
