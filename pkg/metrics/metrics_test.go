package metrics_test

import (
	"context"
	"labelchecker/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestScanMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	sm, err := metrics.NewScanMetrics(mp.Meter(metrics.MeterName))
	require.NoError(t, err)

	ctx := context.Background()
	done := sm.Started(ctx)
	sm.Record(ctx, metrics.OutcomeCompleted, 2*time.Second)
	sm.Record(ctx, metrics.OutcomeRetried, time.Second)
	done()

	families, err := reg.Gather()
	require.NoError(t, err)

	var jobs float64
	var sawHistogram bool
	for _, mf := range families {
		switch {
		case strings.HasPrefix(mf.GetName(), "scan_jobs_total"):
			for _, m := range mf.GetMetric() {
				jobs += m.GetCounter().GetValue()
			}
		case strings.HasPrefix(mf.GetName(), "scan_job_duration"):
			sawHistogram = true
		}
	}
	require.InDelta(t, 2, jobs, 0.001)
	require.True(t, sawHistogram)
}

func TestScanMetrics_NilIsNoop(t *testing.T) {
	var sm *metrics.ScanMetrics
	require.NotPanics(t, func() {
		sm.Started(context.Background())()
		sm.Record(context.Background(), metrics.OutcomeFailed, time.Second)
	})
}

func TestHTTPMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	hm, err := metrics.NewHTTPMetrics(mp.Meter(metrics.MeterName))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(hm.Middleware)
	r.Get("/scans/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/scans/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	families, err := reg.Gather()
	require.NoError(t, err)

	byRoute := map[string]float64{}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "http_requests_total") {
			continue
		}
		for _, m := range mf.GetMetric() {
			var route, status string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "route":
					route = l.GetValue()
				case "status":
					status = l.GetValue()
				}
			}
			byRoute[route+" "+status] += m.GetCounter().GetValue()
		}
	}
	require.InDelta(t, 2, byRoute["/scans/{id} 404"], 0.001)
	require.InDelta(t, 1, byRoute["unmatched 404"], 0.001)
}
