package cli

import (
	"context"

	"github.com/gobees/gobees/internal/app"
)

type contextKey string

// AppKey carries an already opened *app.App through a command context
const AppKey contextKey = "app"

// WithApp returns a context that makes GetCLIFromContext reuse a
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

// GetCLIFromContext returns a CLI around the App stored in ctx, or a
// fresh one from NewCLI when there is none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}
