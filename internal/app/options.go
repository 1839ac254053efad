package app

import (
	"log/slog"

	"github.com/gobees/gobees/internal/datasource"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	opener datasource.Opener
	logger *slog.Logger
}

// WithOpener replaces the SQLite store at the configured path, e.g. with an in-memory one
func WithOpener(open datasource.Opener) Option {
	return func(cfg *appConfig) {
		cfg.opener = open
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
