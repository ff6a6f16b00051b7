package controller

import (
	"context"
	"labelchecker/pkg/logger"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDHeader is read from incoming requests and echoed on responses.
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestID returns the ID WithLogger assigned to the request of ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// GetClientIP returns the host of RemoteAddr. Mount RealIP in front of it to
// resolve clients behind trusted proxies.
func GetClientIP(r *http.Request) string {
	return hostOf(r.RemoteAddr)
}

// WithLogger attaches a request ID and a request scoped logger to the context
// and writes an access log line once the handler returns. Server errors are
// logged at error level. Requests to /healthz and /metrics only show up at debug.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		ctx = logger.WithFields(ctx, zap.String("request_id", requestID))

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := zapcore.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case r.URL.Path == "/healthz" || r.URL.Path == "/metrics":
			level = zapcore.DebugLevel
		}

		logger.Get(ctx).Log(level, "access log",
			zap.Int("status_code", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("method", r.Method),
			zap.String("url", r.URL.RequestURI()),
			zap.String("referer", r.Referer()),
		)
	})
}
