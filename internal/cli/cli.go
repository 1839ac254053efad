package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gobees/gobees/internal/app"
	"github.com/gobees/gobees/internal/cli/styles"
	"github.com/gobees/gobees/internal/config"
	"github.com/gobees/gobees/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with the data source
	Config *config.Config

	logFile io.Closer
	owned   bool // false when App was injected by the caller
}

// NewCLI loads the configuration, starts logging and opens the data source
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	styles.Init(cfg.Theme)

	application := app.New(cfg, app.WithLogger(logging.Logger))
	if err := application.Open(ctx); err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &CLI{
		App:     application,
		Config:  cfg,
		logFile: logFile,
		owned:   true,
	}, nil
}

// Close closes the data source and the log file.
// An injected App is left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return errors.Join(c.App.Close(), c.logFile.Close())
}
