package observability

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the store's Prometheus collectors.
type Metrics struct {
	Dispatched   *prometheus.CounterVec
	SliceChanges *prometheus.CounterVec
	ReduceErrors *prometheus.CounterVec

	logger *slog.Logger
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered under the same names are reused.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		Dispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_dispatched_total",
				Help:      "Total number of actions dispatched to the store",
			},
			[]string{"verb", "model"},
		),
		SliceChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "slice_changes_total",
				Help:      "Total number of committed slice changes",
			},
			[]string{"model"},
		),
		ReduceErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reduce_errors_total",
				Help:      "Total number of actions rejected by a reducer",
			},
			[]string{"verb", "model"},
		),
	}

	if reg != nil {
		m.Dispatched = register(reg, m.Dispatched)
		m.SliceChanges = register(reg, m.SliceChanges)
		m.ReduceErrors = register(reg, m.ReduceErrors)
	}
	return m
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// WithLogger also logs every rejected action.
func (m *Metrics) WithLogger(logger *slog.Logger) *Metrics {
	m.logger = logger
	return m
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			m.Dispatched.WithLabelValues(verbLabel(e.Action.Verb), string(e.Action.Model)).Inc()
		},
		OnSliceChange: func(ctx context.Context, e *domain.SliceEvent) {
			m.SliceChanges.WithLabelValues(string(e.Model)).Inc()
		},
		OnReduceError: func(ctx context.Context, e *domain.DispatchEvent) {
			m.ReduceErrors.WithLabelValues(verbLabel(e.Action.Verb), string(e.Action.Model)).Inc()
			if m.logger != nil {
				m.logger.Info("reduce_error", "action", e.Action.String(), "error", e.Err)
			}
		},
	}
}

// UnknownVerb labels actions whose verb no reducer understands.
const UnknownVerb = "unknown"

// verbLabel keeps the verb label bounded to the known verbs.
func verbLabel(v domain.Verb) string {
	if slices.Contains(domain.Verbs, v) {
		return string(v)
	}
	return UnknownVerb
}

// Chain combines hooks so that each callback runs a's then b's.
func Chain(a, b domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch:    chain(a.OnDispatch, b.OnDispatch),
		OnSliceChange: chain(a.OnSliceChange, b.OnSliceChange),
		OnReduceError: chain(a.OnReduceError, b.OnReduceError),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
