package search

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope of run spans.
const tracerName = "github.com/katalvlaran/bestfirst/search"

// Metrics groups the prometheus collectors updated by engine runs.
// One Metrics value may be shared by many engines.
type Metrics struct {
	runs     *prometheus.CounterVec
	expanded *prometheus.CounterVec
	stale    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice on the same
// registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bestfirst_search_runs_total",
			Help: "Search runs by mode and outcome",
		}, []string{"mode", "outcome"}),
		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bestfirst_search_expanded_states_total",
			Help: "States passed to the transition function",
		}, []string{"mode"}),
		stale: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bestfirst_search_stale_entries_total",
			Help: "Frontier entries dropped because their state was already visited",
		}, []string{"mode"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bestfirst_search_run_duration_seconds",
			Help:    "Search run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"mode"}),
	}
}

func (m *Metrics) observe(s Stats) {
	if m == nil {
		return
	}
	mode := s.Mode.String()
	m.runs.WithLabelValues(mode, s.Outcome.String()).Inc()
	m.expanded.WithLabelValues(mode).Add(float64(s.Expanded))
	m.stale.WithLabelValues(mode).Add(float64(s.Stale))
	m.duration.WithLabelValues(mode).Observe(s.Duration.Seconds())
}

func newTracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return tp.Tracer(tracerName)
}

func (e *Engine[S]) startSpan(ctx context.Context, s Stats) (context.Context, trace.Span) {
	name := "search.Engine.Exists"
	if s.Mode == ModePath {
		name = "search.Engine.Path"
	}

	return e.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("search.run_id", s.RunID),
		attribute.String("search.mode", s.Mode.String()),
	))
}

// finish reports a completed run to the span, metrics and logger.
func (e *Engine[S]) finish(ctx context.Context, span trace.Span, s Stats, err error) {
	defer span.End()

	span.SetAttributes(
		attribute.String("search.outcome", s.Outcome.String()),
		attribute.Int("search.expanded", s.Expanded),
		attribute.Int("search.stale", s.Stale),
		attribute.Int("search.inserted", s.Inserted),
		attribute.Int("search.path_len", s.PathLen),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	e.opts.Metrics.observe(s)

	attrs := []any{
		slog.String("run_id", s.RunID),
		slog.String("mode", s.Mode.String()),
		slog.String("outcome", s.Outcome.String()),
		slog.Int("expanded", s.Expanded),
		slog.Int("stale", s.Stale),
		slog.Int("inserted", s.Inserted),
		slog.Int("recorded", s.Recorded),
		slog.Int("path_len", s.PathLen),
		slog.Duration("duration", s.Duration),
	}
	if err != nil {
		e.opts.Logger.WarnContext(ctx, "search run canceled", append(attrs, slog.String("error", err.Error()))...)
		return
	}
	e.opts.Logger.InfoContext(ctx, "search run finished", attrs...)
}
