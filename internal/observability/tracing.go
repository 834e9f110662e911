package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// AttrInput is set on spans only when input tracing is enabled.
const AttrInput = "rexp.input"

// Tracer wraps an OpenTelemetry tracer with translation-specific span creation methods.
type Tracer struct {
	tracer      trace.Tracer
	serviceName string
	recordInput bool
}

// NewTracer creates a new Tracer using the given TracerProvider.
func NewTracer(tp trace.TracerProvider, serviceName string) *Tracer {
	return &Tracer{
		tracer:      tp.Tracer(TracerName),
		serviceName: serviceName,
	}
}

// StartSpan starts a new span with the given name and attributes.
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}

func (t *Tracer) inputAttrs(kind, input string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		KindAttr(kind),
		InputLengthAttr(len(input)),
	}
	if t.recordInput {
		attrs = append(attrs, attribute.String(AttrInput, input))
	}
	return attrs
}

// StartExpression starts a span for translating an expression.
func (t *Tracer) StartExpression(ctx context.Context, input string, flatten bool) (context.Context, trace.Span) {
	attrs := append(t.inputAttrs(KindExpression, input), FlattenAttr(flatten))
	return t.StartSpan(ctx, "rexp.expression", attrs...)
}

// StartInterval starts a span for parsing an interval literal.
func (t *Tracer) StartInterval(ctx context.Context, input string) (context.Context, trace.Span) {
	return t.StartSpan(ctx, "rexp.interval", t.inputAttrs(KindInterval, input)...)
}

// StartTermSplit starts a span for splitting an interaction term.
func (t *Tracer) StartTermSplit(ctx context.Context, input string) (context.Context, trace.Span) {
	return t.StartSpan(ctx, "rexp.term", t.inputAttrs(KindTerm, input)...)
}

// RecordError records an error on the span.
func (t *Tracer) RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// LoggerWithTrace returns a logger enriched with trace context.
func LoggerWithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return logger
	}
	return logger.With(
		slog.String(LogFieldTraceID, span.SpanContext().TraceID().String()),
		slog.String(LogFieldSpanID, span.SpanContext().SpanID().String()),
	)
}
