package apiary

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/datasource"
)

// ListCmd returns the apiary list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all apiaries",
		Long:  "List all apiaries ordered by id.",
		RunE:  cli.Run(runList),
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	apiaries, err := datasource.AwaitApiaries(ctx, cliInstance.App.DataSource)
	if err != nil {
		return cli.Fail(formatter, "APIARY_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		ids := make([]int64, len(apiaries))
		for i, a := range apiaries {
			ids[i] = a.ID
		}
		return formatter.IDs(ids...)
	}

	if len(apiaries) == 0 {
		return formatter.Render(apiaries, "No apiaries found")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d apiaries:\n", len(apiaries))
	for _, a := range apiaries {
		fmt.Fprintf(&b, "\n  [%d] %s", a.ID, a.Name)
		if a.Notes != "" {
			fmt.Fprintf(&b, " - %s", a.Notes)
		}
	}

	return formatter.Render(apiaries, b.String())
}
