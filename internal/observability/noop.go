package observability

import (
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NewNoopTracer creates a tracer that does nothing.
func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer:      tracenoop.NewTracerProvider().Tracer(""),
		serviceName: "",
	}
}

// NewNoopMetrics creates metrics that do nothing.
func NewNoopMetrics() *Metrics {
	meter := noop.NewMeterProvider().Meter("")
	m := &Metrics{}

	m.translationDuration, _ = meter.Float64Histogram("rexp.translation.duration") //nolint:errcheck
	m.translationCount, _ = meter.Int64Counter("rexp.translation.count")           //nolint:errcheck
	m.cacheHitCount, _ = meter.Int64Counter("rexp.cache.hit.count")                //nolint:errcheck
	m.errorCount, _ = meter.Int64Counter("rexp.error.count")                       //nolint:errcheck

	return m
}
