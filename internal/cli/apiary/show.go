package apiary

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/cli/styles"
	"github.com/gobees/gobees/internal/datasource"
	"github.com/gobees/gobees/internal/models"
)

// Detail is an apiary together with its hives
type Detail struct {
	Apiary models.Apiary `json:"apiary" yaml:"apiary"`
	Hives  []models.Hive `json:"hives" yaml:"hives"`
}

// GetID returns the apiary id
func (d Detail) GetID() int64 {
	return d.Apiary.ID
}

// ShowCmd returns the apiary show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an apiary and its hives",
		RunE:  cli.Run(runShow),
	}

	cmd.Flags().Int64("id", 0, "Apiary ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runShow(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetInt64("id")
	ds := cliInstance.App.DataSource

	apiary, err := datasource.AwaitApiary(ctx, ds, id)
	if err != nil {
		return cli.Fail(formatter, "APIARY_NOT_FOUND", fmt.Errorf("apiary %d: %w", id, err))
	}

	hives, err := datasource.AwaitHives(ctx, ds, id)
	if err != nil {
		return cli.Fail(formatter, "HIVE_FETCH_ERROR", err)
	}

	detail := Detail{Apiary: apiary, Hives: hives}
	return formatter.Render(detail, styles.RenderApiaryCard(apiary, hives))
}
