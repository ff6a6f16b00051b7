package serrors_test

import (
	"errors"
	"fmt"
	"labelchecker/pkg/serrors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type quotaError struct{ remaining int }

func (e *quotaError) Error() string { return fmt.Sprintf("%d scans left", e.remaining) }

func TestKinds(t *testing.T) {
	kinds := map[serrors.Kind]int{
		serrors.ErrNotFound:        http.StatusNotFound,
		serrors.ErrUnauthorized:    http.StatusUnauthorized,
		serrors.ErrForbidden:       http.StatusForbidden,
		serrors.ErrBadRequest:      http.StatusBadRequest,
		serrors.ErrConflict:        http.StatusConflict,
		serrors.ErrPaymentRequired: http.StatusPaymentRequired,
		serrors.ErrTooLarge:        http.StatusRequestEntityTooLarge,
		serrors.ErrInternal:        http.StatusInternalServerError,
		serrors.ErrTimeout:         http.StatusGatewayTimeout,
		serrors.ErrUnavailable:     http.StatusServiceUnavailable,
		serrors.ErrRateLimited:     http.StatusTooManyRequests,
	}
	require.Len(t, kinds, 11)

	codes := map[string]bool{}
	for k, status := range kinds {
		require.Equal(t, status, k.Status(), k.Error())
		require.NotEmpty(t, k.Public(), k.Error())
		require.False(t, codes[k.Error()], "duplicate code %s", k.Error())
		codes[k.Error()] = true
	}

	// same code, different sentinel
	require.NotEqual(t, serrors.ErrConflict, serrors.NewKind("CONFLICT", http.StatusConflict, "conflict"))
}

func TestError_Message(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{"with", serrors.With(serrors.ErrNotFound, "scan %s not found", "abc"), "scan abc not found"},
		{"wrap", serrors.Wrap(serrors.ErrUnavailable, cause, "could not reach model"), "could not reach model: connection reset"},
		{"wrap without message", serrors.Wrap(serrors.ErrUnavailable, cause, ""), "connection reset"},
		{"kind only", serrors.KindOnly(serrors.ErrForbidden), "FORBIDDEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestError_IsAndAs(t *testing.T) {
	cause := &quotaError{remaining: 0}
	err := fmt.Errorf("enqueue: %w", serrors.Wrap(serrors.ErrPaymentRequired, cause, "scan quota exhausted"))

	require.ErrorIs(t, err, serrors.ErrPaymentRequired)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrForbidden)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrPaymentRequired, k)

	var qe *quotaError
	require.ErrorAs(t, err, &qe)
	require.Same(t, cause, qe)

	var se *serrors.Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, serrors.ErrPaymentRequired, se.Kind())
	require.Equal(t, "scan quota exhausted", se.Message())
	require.Same(t, cause, se.Cause())
}

func TestKindOfAndHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		kind serrors.Kind
		want int
	}{
		{serrors.KindOnly(serrors.ErrBadRequest), serrors.ErrBadRequest, http.StatusBadRequest},
		{fmt.Errorf("outer: %w", serrors.KindOnly(serrors.ErrTooLarge)), serrors.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{serrors.Wrap(serrors.ErrRateLimited, errors.New("429"), "upstream"), serrors.ErrRateLimited, http.StatusTooManyRequests},
		{errors.New("plain"), serrors.ErrInternal, http.StatusInternalServerError},
		// the outermost kind wins
		{serrors.Wrap(serrors.ErrUnavailable, serrors.KindOnly(serrors.ErrNotFound), "lookup"), serrors.ErrUnavailable,
			http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		require.Equal(t, tt.kind, serrors.KindOf(tt.err), tt.err.Error())
		require.Equal(t, tt.want, serrors.HTTPStatus(tt.err), tt.err.Error())
	}

	custom := serrors.NewKind("TEAPOT", http.StatusTeapot, "short and stout")
	require.Equal(t, http.StatusTeapot, serrors.HTTPStatus(serrors.KindOnly(custom)))
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "email already registered",
		serrors.PublicMessage(serrors.With(serrors.ErrConflict, "email already registered")))
	require.Equal(t, "resource not found", serrors.PublicMessage(serrors.KindOnly(serrors.ErrNotFound)))
	require.Equal(t, "internal error",
		serrors.PublicMessage(serrors.Wrap(serrors.ErrInternal, errors.New("pq: syntax"), "could not query scans")))
	require.Equal(t, "internal error", serrors.PublicMessage(errors.New("boom")))
}
