package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	noopmetric "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestNewTracer(t *testing.T) {
	tp := tracenoop.NewTracerProvider()
	tracer := NewTracer(tp, "test-service")

	if tracer == nil {
		t.Fatal("NewTracer() should return non-nil tracer")
		return
	}
	if tracer.serviceName != "test-service" {
		t.Errorf("serviceName = %q, want %q", tracer.serviceName, "test-service")
	}
	if tracer.recordInput {
		t.Error("recordInput should default to false")
	}
}

func TestTracer_StartExpression(t *testing.T) {
	tp := tracenoop.NewTracerProvider()
	tracer := NewTracer(tp, "test-service")

	ctx, span := tracer.StartExpression(context.Background(), "log(A / B)", false)
	defer span.End()

	if ctx == nil {
		t.Error("StartExpression() should return non-nil context")
	}
}

func TestTracer_StartInterval(t *testing.T) {
	tp := tracenoop.NewTracerProvider()
	tracer := NewTracer(tp, "test-service")

	ctx, span := tracer.StartInterval(context.Background(), "[-Inf, 0)")
	defer span.End()

	if ctx == nil {
		t.Error("StartInterval() should return non-nil context")
	}
}

func TestTracer_StartTermSplit(t *testing.T) {
	tp := tracenoop.NewTracerProvider()
	tracer := NewTracer(tp, "test-service")

	ctx, span := tracer.StartTermSplit(context.Background(), "a:b")
	defer span.End()

	if ctx == nil {
		t.Error("StartTermSplit() should return non-nil context")
	}
}

func TestTracer_InputAttrs(t *testing.T) {
	tracer := NewNoopTracer()

	attrs := tracer.inputAttrs(KindExpression, "a + b")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes without input tracing, got %d", len(attrs))
	}

	tracer.recordInput = true
	attrs = tracer.inputAttrs(KindExpression, "a + b")
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes with input tracing, got %d", len(attrs))
	}
	if string(attrs[2].Key) != AttrInput || attrs[2].Value.AsString() != "a + b" {
		t.Errorf("unexpected input attribute %v", attrs[2])
	}
}

func TestLoggerWithTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// Without valid trace context the logger is returned unchanged
	if LoggerWithTrace(context.Background(), logger) != logger {
		t.Error("LoggerWithTrace() should return the same logger without a span")
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02},
		SpanID:     trace.SpanID{0x03},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	LoggerWithTrace(ctx, logger).Info("translated")

	out := buf.String()
	if !strings.Contains(out, LogFieldTraceID+"="+sc.TraceID().String()) {
		t.Errorf("expected trace id in log output, got %q", out)
	}
	if !strings.Contains(out, LogFieldSpanID+"="+sc.SpanID().String()) {
		t.Errorf("expected span id in log output, got %q", out)
	}
}

func TestNewMetrics(t *testing.T) {
	mp := noopmetric.NewMeterProvider()
	metrics := NewMetrics(mp)

	if metrics == nil {
		t.Fatal("NewMetrics() should return non-nil metrics")
		return
	}
	if metrics.translationDuration == nil || metrics.translationCount == nil ||
		metrics.cacheHitCount == nil || metrics.errorCount == nil {
		t.Error("NewMetrics() should create every instrument")
	}
}

func TestConfig_Tracer_Nil(t *testing.T) {
	var cfg *Config
	if cfg.Tracer() == nil {
		t.Error("Tracer() on nil config should return noop tracer")
	}
}

func TestConfig_Metrics_Nil(t *testing.T) {
	var cfg *Config
	if cfg.Metrics() == nil {
		t.Error("Metrics() on nil config should return noop metrics")
	}
}

func TestConfig_Tracer_NotInitialized(t *testing.T) {
	cfg := NewConfig()
	if cfg.Tracer() == nil {
		t.Error("Tracer() before Initialize should return noop tracer")
	}
}

func TestConfig_Metrics_NotInitialized(t *testing.T) {
	cfg := NewConfig()
	if cfg.Metrics() == nil {
		t.Error("Metrics() before Initialize should return noop metrics")
	}
}
