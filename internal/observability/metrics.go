package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the translation metric instruments.
type Metrics struct {
	translationDuration metric.Float64Histogram
	translationCount    metric.Int64Counter
	cacheHitCount       metric.Int64Counter
	errorCount          metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Instrument creation only fails on invalid parameters; fall back to a
	// bare instrument so recording never hits a nil.
	var err error

	m.translationDuration, err = meter.Float64Histogram(
		"rexp.translation.duration",
		metric.WithDescription("Duration of translations in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.translationDuration, _ = meter.Float64Histogram("rexp.translation.duration")
	}

	m.translationCount, err = meter.Int64Counter(
		"rexp.translation.count",
		metric.WithDescription("Total number of translations"),
		metric.WithUnit("{translation}"),
	)
	if err != nil {
		m.translationCount, _ = meter.Int64Counter("rexp.translation.count")
	}

	m.cacheHitCount, err = meter.Int64Counter(
		"rexp.cache.hit.count",
		metric.WithDescription("Number of translations served from the cache"),
		metric.WithUnit("{translation}"),
	)
	if err != nil {
		m.cacheHitCount, _ = meter.Int64Counter("rexp.cache.hit.count")
	}

	m.errorCount, err = meter.Int64Counter(
		"rexp.error.count",
		metric.WithDescription("Total number of failed translations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("rexp.error.count")
	}

	return m
}

// RecordTranslation records metrics for a completed translation.
func (m *Metrics) RecordTranslation(ctx context.Context, kind string, cacheHit bool, duration time.Duration) {
	attrs := metric.WithAttributes(KindAttr(kind), CacheHitAttr(cacheHit))
	m.translationDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	m.translationCount.Add(ctx, 1, attrs)
	if cacheHit {
		m.cacheHitCount.Add(ctx, 1, metric.WithAttributes(KindAttr(kind)))
	}
}

// RecordError records a failed translation.
func (m *Metrics) RecordError(ctx context.Context, kind, errorType string) {
	m.errorCount.Add(ctx, 1, metric.WithAttributes(KindAttr(kind), ErrorTypeAttr(errorType)))
}
