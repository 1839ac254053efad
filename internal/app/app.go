package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gobees/gobees/internal/config"
	"github.com/gobees/gobees/internal/datasource"
	"github.com/gobees/gobees/internal/events"
)

// App holds the data source and the event broker it publishes to.
// This is the main application container that manages their lifecycles.
type App struct {
	// DataSource is the asynchronous data API
	DataSource *datasource.Repository

	// Events receives a change event after every successful write
	Events *events.Broker

	logger *slog.Logger
}

// New creates an App from cfg. Nothing is opened until Open.
func New(cfg *config.Config, opts ...Option) *App {
	ac := appConfig{}
	for _, opt := range opts {
		opt(&ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if ac.opener == nil {
		ac.opener = datasource.SQLite(cfg.Database.Path)
	}

	broker := events.NewBroker()
	ds := datasource.New(ac.opener,
		datasource.WithEventPublisher(broker),
		datasource.WithLogger(ac.logger),
		datasource.WithMaxConcurrency(cfg.DataSource.MaxConcurrency),
	)

	return &App{
		DataSource: ds,
		Events:     broker,
		logger:     ac.logger,
	}
}

// Open opens the data source
func (a *App) Open(ctx context.Context) error {
	return a.DataSource.OpenDB(ctx)
}

// Close drains and closes the data source, then the broker
func (a *App) Close() error {
	var errs []error
	if err := a.DataSource.CloseDB(); err != nil && !errors.Is(err, datasource.ErrNotOpen) {
		errs = append(errs, err)
	}
	if err := a.Events.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
