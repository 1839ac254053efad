package hive

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/datasource"
)

// DeleteCmd returns the hive delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a hive",
		Long:  "Delete a hive and its records (requires confirmation unless --force or --quiet).",
		RunE:  cli.Run(runDelete),
	}

	cmd.Flags().Int64("id", 0, "Hive ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runDelete(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetInt64("id")
	force, _ := cmd.Flags().GetBool("force")
	ds := cliInstance.App.DataSource

	hive, err := datasource.AwaitHive(ctx, ds, id)
	if err != nil {
		return cli.Fail(formatter, "HIVE_NOT_FOUND", fmt.Errorf("hive %d: %w", id, err))
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete hive #%d: '%s' and its records?", id, hive.Name)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.DeleteHive(ctx, id, cb)
	}); err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Render(map[string]int64{"hive_id": id},
		fmt.Sprintf("✓ Hive %d deleted successfully", id))
}
