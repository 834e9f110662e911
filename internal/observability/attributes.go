// Package observability provides OpenTelemetry-based instrumentation for translations.
//
// It supports distributed tracing, metrics collection, and structured logging
// enriched with trace context.
//
// All observability features are opt-in. When not configured, no-op implementations
// are used with zero performance overhead.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/nlstn/go-rexp"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/nlstn/go-rexp"
)

// Semantic attribute keys for translation spans and metrics.
const (
	AttrKind        = "rexp.kind"
	AttrFlatten     = "rexp.flatten"
	AttrInputLength = "rexp.input_length"
	AttrCacheHit    = "rexp.cache_hit"
	AttrTermCount   = "rexp.term_count"
	AttrErrorType   = "error.type"
)

// Translation kinds for the rexp.kind attribute.
const (
	KindExpression = "expression"
	KindInterval   = "interval"
	KindTerm       = "term"
)

// Log field keys for structured logging with trace context.
const (
	LogFieldTraceID  = "trace_id"
	LogFieldSpanID   = "span_id"
	LogFieldKind     = "rexp.kind"
	LogFieldInput    = "input"
	LogFieldDuration = "duration_ms"
	LogFieldError    = "error"
)

// KindAttr creates an attribute for the translation kind.
func KindAttr(kind string) attribute.KeyValue {
	return attribute.String(AttrKind, kind)
}

// FlattenAttr creates an attribute for the flatten flag of an expression translation.
func FlattenAttr(flatten bool) attribute.KeyValue {
	return attribute.Bool(AttrFlatten, flatten)
}

// InputLengthAttr creates an attribute for the length of the source text.
func InputLengthAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrInputLength, n)
}

// CacheHitAttr creates an attribute recording whether a result came from the cache.
func CacheHitAttr(hit bool) attribute.KeyValue {
	return attribute.Bool(AttrCacheHit, hit)
}

// TermCountAttr creates an attribute for the number of variables in a split term.
func TermCountAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrTermCount, n)
}

// ErrorTypeAttr creates an attribute classifying a failure.
func ErrorTypeAttr(errorType string) attribute.KeyValue {
	return attribute.String(AttrErrorType, errorType)
}
