package hive

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/cli/styles"
	"github.com/gobees/gobees/internal/datasource"
)

// ShowCmd returns the hive show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a hive with its daily recordings",
		RunE:  cli.Run(runShow),
	}

	cmd.Flags().Int64("id", 0, "Hive ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runShow(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetInt64("id")

	hive, err := datasource.AwaitHiveWithRecordings(ctx, cliInstance.App.DataSource, id)
	if err != nil {
		return cli.Fail(formatter, "HIVE_NOT_FOUND", fmt.Errorf("hive %d: %w", id, err))
	}

	return formatter.Render(hive, styles.RenderHiveCard(hive))
}
