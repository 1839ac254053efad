package cli

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

// RunFunc is the body of a command once the CLI is initialized
type RunFunc func(ctx context.Context, cmd *cobra.Command, cliInstance *CLI, formatter *OutputFormatter) error

// Run returns a cobra RunE that initializes the CLI, runs fn and closes the CLI
func Run(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		formatter := NewFormatter(cmd)

		cliInstance, err := GetCLIFromContext(ctx)
		if err != nil {
			return Fail(formatter, "INITIALIZATION_ERROR", err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				log.Printf("Error closing CLI: %v", err)
			}
		}()

		return fn(ctx, cmd, cliInstance, formatter)
	}
}
