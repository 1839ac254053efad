package apiary

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/datasource"
)

// DeleteAllCmd returns the apiary delete-all subcommand
func DeleteAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every apiary",
		Long:  "Delete every apiary, hive, record and weather observation (requires confirmation unless --force or --quiet).",
		RunE:  cli.Run(runDeleteAll),
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runDeleteAll(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	force, _ := cmd.Flags().GetBool("force")

	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, "Delete ALL apiaries and their data?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	ds := cliInstance.App.DataSource
	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.DeleteAllApiaries(ctx, cb)
	}); err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Render(map[string]bool{"deleted": true}, "✓ All apiaries deleted")
}
