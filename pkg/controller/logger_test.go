package controller_test

import (
	"bufio"
	"errors"
	"labelchecker/pkg/controller"
	"labelchecker/pkg/logger"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for is ignored", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "10.0.0.1:1", "10.0.0.1"},
		{"real ip is ignored", map[string]string{"X-Real-IP": "9.8.7.6"}, "10.0.0.1:1", "10.0.0.1"},
		{"remote addr", nil, "10.0.0.1:12345", "10.0.0.1"},
		{"invalid remote addr", nil, "not-an-addr", "not-an-addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))

	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	require.NotEqual(t, "abc-123", seen)
	require.Equal(t, seen, rec.Header().Get(controller.RequestIDHeader))
}

func TestWithLogger_AccessLogLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	// inject the observed logger through the request context
	wrap := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithLogger(r.Context(), zap.New(core))
			controller.WithLogger(h).ServeHTTP(w, r.WithContext(ctx))
		})
	}
	status := http.StatusOK
	h := wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("hello"))
	}))

	tests := []struct {
		path   string
		status int
		level  zapcore.Level
	}{
		{"/v1/scans", http.StatusOK, zapcore.InfoLevel},
		{"/v1/scans", http.StatusNotFound, zapcore.InfoLevel},
		{"/v1/scans", http.StatusBadGateway, zapcore.ErrorLevel},
		{"/healthz", http.StatusOK, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		status = tt.status
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

		entries := logs.FilterMessage("access log").TakeAll()
		require.Len(t, entries, 1, tt.path)
		require.Equal(t, tt.level, entries[0].Level, "%s %d", tt.path, tt.status)
		fields := entries[0].ContextMap()
		require.EqualValues(t, tt.status, fields["status_code"])
		require.EqualValues(t, 5, fields["bytes"])
		require.NotEmpty(t, fields["request_id"])
	}
}

type hijackRecorder struct {
	*httptest.ResponseRecorder

	hijacked bool
}

func (h *hijackRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true

	return nil, nil, errors.New("recorder cannot be hijacked")
}

func TestWithLogger_Hijack(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := w.(http.Hijacker)
		require.True(t, ok, "websocket upgrades need a hijackable writer")
		_, _, err := h.Hijack()
		require.Error(t, err)
	})

	rec := &hijackRecorder{ResponseRecorder: httptest.NewRecorder()}
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))
	require.True(t, rec.hijacked)
}
