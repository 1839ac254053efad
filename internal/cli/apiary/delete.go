package apiary

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/datasource"
)

// DeleteCmd returns the apiary delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an apiary",
		Long:  "Delete an apiary with its hives, records and weather data (requires confirmation unless --force or --quiet).",
		RunE:  cli.Run(runDelete),
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Apiary ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runDelete(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetInt64("id")
	force, _ := cmd.Flags().GetBool("force")
	ds := cliInstance.App.DataSource

	apiary, err := datasource.AwaitApiary(ctx, ds, id)
	if err != nil {
		return cli.Fail(formatter, "APIARY_NOT_FOUND", fmt.Errorf("apiary %d: %w", id, err))
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete apiary #%d: '%s' and all of its hives?", id, apiary.Name)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.DeleteApiary(ctx, id, cb)
	}); err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Render(map[string]int64{"apiary_id": id},
		fmt.Sprintf("✓ Apiary %d deleted successfully", id))
}
