package rexp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/nlstn/go-rexp/internal/cache"
	"github.com/nlstn/go-rexp/internal/datatype"
	"github.com/nlstn/go-rexp/internal/expr"
	"github.com/nlstn/go-rexp/internal/formula"
	"github.com/nlstn/go-rexp/internal/observability"
)

// DefaultCacheSize is the number of translations a Translator keeps per kind
// unless WithCacheSize says otherwise.
const DefaultCacheSize = 1024

// ObservabilityConfig configures tracing and metrics for a Translator.
// Leaving a provider nil disables that signal.
type ObservabilityConfig struct {
	// TracerProvider is the OpenTelemetry tracer provider.
	TracerProvider trace.TracerProvider

	// MeterProvider is the OpenTelemetry meter provider.
	MeterProvider metric.MeterProvider

	// ServiceName identifies this service in traces and metrics.
	ServiceName string

	// ServiceVersion is the version of this service.
	ServiceVersion string

	// EnableInputTracing records the source text of each translation as a
	// span attribute.
	EnableInputTracing bool
}

// Translator wraps the parse functions with a result cache, tracing, metrics
// and debug logging. It is safe for concurrent use.
//
// Cached trees are shared between callers and must not be modified.
type Translator struct {
	logger        *slog.Logger
	observability *observability.Config
	cacheSize     int

	// expressions holds one cache per flatten setting, indexed by flattenIndex.
	expressions [2]*cache.Cache[Node]
	intervals   *cache.Cache[*IntervalBound]
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for debug output.
// If not set, or set to nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// WithObservability enables OpenTelemetry tracing and metrics.
func WithObservability(cfg ObservabilityConfig) Option {
	return func(t *Translator) {
		opts := []observability.Option{
			observability.WithTracerProvider(cfg.TracerProvider),
			observability.WithMeterProvider(cfg.MeterProvider),
		}
		if cfg.ServiceName != "" {
			opts = append(opts, observability.WithServiceName(cfg.ServiceName))
		}
		if cfg.ServiceVersion != "" {
			opts = append(opts, observability.WithServiceVersion(cfg.ServiceVersion))
		}
		if cfg.EnableInputTracing {
			opts = append(opts, observability.WithInputTracing())
		}
		t.observability = observability.NewConfig(opts...)
	}
}

// WithCacheSize sets how many translations are cached per kind.
// A size of zero or less disables caching.
func WithCacheSize(size int) Option {
	return func(t *Translator) {
		t.cacheSize = size
	}
}

// NewTranslator creates a Translator with the given options.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		logger:    slog.Default(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(t)
	}

	// Tracer() and Metrics() fall back to no-ops on a nil config
	if !t.observability.IsEnabled() {
		t.observability = nil
	} else if err := t.observability.Initialize(); err != nil {
		t.logger.Warn("Failed to initialize observability, continuing without it", "error", err)
		t.observability = nil
	}

	t.expressions[0] = cache.New[Node](t.cacheSize)
	t.expressions[1] = cache.New[Node](t.cacheSize)
	t.intervals = cache.New[*IntervalBound](t.cacheSize)
	return t
}

func flattenIndex(flatten bool) int {
	if flatten {
		return 1
	}
	return 0
}

// TranslateExpression parses an R expression into a tree. See ParseExpression
// for the meaning of flatten.
func (t *Translator) TranslateExpression(ctx context.Context, text string, flatten bool) (Node, error) {
	start := time.Now()
	ctx, span := t.observability.Tracer().StartExpression(ctx, text, flatten)
	defer span.End()

	node, hit, err := t.expressions[flattenIndex(flatten)].GetOrCompute(text, func() (Node, error) {
		return expr.ParseExpression(text, flatten)
	})
	if err != nil {
		return nil, t.fail(ctx, span, observability.KindExpression, text, fmt.Errorf("translate expression: %w", err))
	}

	t.succeed(ctx, span, observability.KindExpression, text, hit, start)
	return node, nil
}

// TranslateInterval parses an interval literal. See ParseInterval.
func (t *Translator) TranslateInterval(ctx context.Context, text string) (*IntervalBound, error) {
	start := time.Now()
	ctx, span := t.observability.Tracer().StartInterval(ctx, text)
	defer span.End()

	interval, hit, err := t.intervals.GetOrCompute(text, func() (*IntervalBound, error) {
		return expr.ParseInterval(text)
	})
	if err != nil {
		return nil, t.fail(ctx, span, observability.KindInterval, text, fmt.Errorf("translate interval: %w", err))
	}

	t.succeed(ctx, span, observability.KindInterval, text, hit, start)
	return interval, nil
}

// SplitInteractionTerm splits a formula interaction term into variable names.
// Splitting cannot fail; the context only carries the trace span.
func (t *Translator) SplitInteractionTerm(ctx context.Context, text string) []string {
	start := time.Now()
	ctx, span := t.observability.Tracer().StartTermSplit(ctx, text)
	defer span.End()

	names := formula.SplitInteractionTerm(text)
	span.SetAttributes(observability.TermCountAttr(len(names)))

	t.succeed(ctx, span, observability.KindTerm, text, false, start)
	return names
}

// DataTypeOf maps an R column class to its data type.
func (t *Translator) DataTypeOf(class string) (DataType, error) {
	dt, err := datatype.FromRClass(class)
	if err != nil {
		t.logger.Debug("Unsupported R class", "class", class, observability.LogFieldError, err)
		return dt, err
	}
	return dt, nil
}

func (t *Translator) succeed(ctx context.Context, span trace.Span, kind, text string, hit bool, start time.Time) {
	duration := time.Since(start)
	span.SetAttributes(observability.CacheHitAttr(hit))
	t.observability.Metrics().RecordTranslation(ctx, kind, hit, duration)

	observability.LoggerWithTrace(ctx, t.logger).Debug("Translated",
		observability.LogFieldKind, kind,
		observability.LogFieldInput, text,
		"cache_hit", hit,
		observability.LogFieldDuration, float64(duration.Microseconds())/1000,
	)
}

func (t *Translator) fail(ctx context.Context, span trace.Span, kind, text string, err error) error {
	t.observability.Tracer().RecordError(span, err)
	t.observability.Metrics().RecordError(ctx, kind, errorType(err))

	observability.LoggerWithTrace(ctx, t.logger).Debug("Translation failed",
		observability.LogFieldKind, kind,
		observability.LogFieldInput, text,
		observability.LogFieldError, err,
	)
	return err
}
