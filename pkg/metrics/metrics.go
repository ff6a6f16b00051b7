package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120} //nolint: gochecknoglobals

// MeterName is the instrumentation scope of the application meters.
const MeterName = "labelchecker"

// NewMeterProvider creates an OpenTelemetry meter provider whose instruments are
// exported through the given Prometheus registerer.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Scan job outcomes.
const (
	OutcomeCompleted   = "completed"
	OutcomeRetried     = "retried"
	OutcomeSnoozed     = "snoozed"
	OutcomeCancelled   = "cancelled"
	OutcomeFailed      = "failed"
	OutcomeRateLimited = "rate_limited"
)

// ScanMetrics records label scan job metrics. A nil *ScanMetrics records nothing.
type ScanMetrics struct {
	jobs     metric.Int64Counter
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

// NewScanMetrics creates the scan job instruments on the given meter.
func NewScanMetrics(meter metric.Meter) (*ScanMetrics, error) {
	jobs, err := meter.Int64Counter("scan_jobs",
		metric.WithDescription("Number of label scan job attempts by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create scan jobs counter: %w", err)
	}
	duration, err := meter.Float64Histogram("scan_job_duration",
		metric.WithDescription("Duration of label scan job attempts."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create scan duration histogram: %w", err)
	}
	inFlight, err := meter.Int64UpDownCounter("scan_jobs_in_flight",
		metric.WithDescription("Number of label scan jobs currently calling the analyzer."))
	if err != nil {
		return nil, fmt.Errorf("could not create in flight counter: %w", err)
	}

	return &ScanMetrics{jobs: jobs, duration: duration, inFlight: inFlight}, nil
}

// Started marks an analyzer call as in flight and returns a func that ends it.
func (m *ScanMetrics) Started(ctx context.Context) func() {
	if m == nil {
		return func() {}
	}
	m.inFlight.Add(ctx, 1)

	return func() { m.inFlight.Add(ctx, -1) }
}

// Record counts one finished attempt with its outcome and duration.
func (m *ScanMetrics) Record(ctx context.Context, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.jobs.Add(ctx, 1, attrs)
	m.duration.Record(ctx, d.Seconds(), attrs)
}
