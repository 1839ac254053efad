package datasource

import (
	"log/slog"

	"github.com/gobees/gobees/internal/events"
)

// DefaultMaxConcurrency bounds concurrent store access when no option overrides it
const DefaultMaxConcurrency = 4

// Option is a functional option for configuring a Repository
type Option func(*config)

type config struct {
	publisher      events.EventPublisher
	logger         *slog.Logger
	maxConcurrency int64
	executor       func(func())
	metrics        *Metrics
}

// WithEventPublisher sets where change events are sent after successful writes
func WithEventPublisher(p events.EventPublisher) Option {
	return func(cfg *config) {
		cfg.publisher = p
	}
}

// WithLogger sets the logger for the data source
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithMaxConcurrency bounds how many requests use the store at once.
// Values below 1 are ignored.
func WithMaxConcurrency(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxConcurrency = int64(n)
		}
	}
}

// WithCallbackExecutor sets how callbacks are run. The default runs them on
// the worker goroutine; a UI passes a function that posts to its own thread.
func WithCallbackExecutor(exec func(func())) Option {
	return func(cfg *config) {
		cfg.executor = exec
	}
}

// WithMetrics shares a Metrics instance, e.g. across reopened data sources
func WithMetrics(m *Metrics) Option {
	return func(cfg *config) {
		cfg.metrics = m
	}
}
