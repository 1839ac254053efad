package hive

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/datasource"
)

// ListCmd returns the hive list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the hives of an apiary",
		RunE:  cli.Run(runList),
	}

	cmd.Flags().Int64("apiary", 0, "Apiary ID (required)")
	if err := cmd.MarkFlagRequired("apiary"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	apiaryID, _ := cmd.Flags().GetInt64("apiary")

	hives, err := datasource.AwaitHives(ctx, cliInstance.App.DataSource, apiaryID)
	if err != nil {
		return cli.Fail(formatter, "HIVE_FETCH_ERROR", fmt.Errorf("hives of apiary %d: %w", apiaryID, err))
	}

	if formatter.Quiet {
		ids := make([]int64, len(hives))
		for i, h := range hives {
			ids[i] = h.ID
		}
		return formatter.IDs(ids...)
	}

	if len(hives) == 0 {
		return formatter.Render(hives, fmt.Sprintf("No hives found in apiary %d", apiaryID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d hives:\n", len(hives))
	for _, h := range hives {
		fmt.Fprintf(&b, "\n  [%d] %s", h.ID, h.Name)
		if h.Notes != "" {
			fmt.Fprintf(&b, " - %s", h.Notes)
		}
	}

	return formatter.Render(hives, b.String())
}
