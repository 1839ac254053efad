package record

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/datasource"
	"github.com/gobees/gobees/internal/models"
)

// AddCmd returns the record add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a single reading to a hive",
		RunE:  cli.Run(runAdd),
	}

	// Required flags
	cmd.Flags().Int64("hive", 0, "Hive ID (required)")
	cmd.Flags().Int("bees", 0, "Number of bees counted (required)")
	for _, name := range []string{"hive", "bees"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().String("at", "", "Reading time, RFC 3339 (default now)")
	cmd.Flags().Float64("temperature", 0, "Hive temperature in Celsius")

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runAdd(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	hiveID, _ := cmd.Flags().GetInt64("hive")
	bees, _ := cmd.Flags().GetInt("bees")
	at, _ := cmd.Flags().GetString("at")

	timestamp := time.Now()
	if at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return cli.Fail(formatter, "INVALID_TIMESTAMP",
				cli.WithExitCode(cli.ExitUsage, fmt.Errorf("invalid --at %q: %w", at, err)))
		}
		timestamp = parsed
	}

	record := models.Record{
		HiveID:      hiveID,
		Timestamp:   timestamp,
		NumBees:     bees,
		Temperature: cli.OptionalFloat(cmd, "temperature"),
	}

	ds := cliInstance.App.DataSource
	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.SaveRecord(ctx, hiveID, record, cb)
	}); err != nil {
		return cli.Fail(formatter, "RECORD_SAVE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Render(record, fmt.Sprintf("✓ Recorded %d bees for hive %d at %s",
		bees, hiveID, timestamp.Format(time.RFC3339)))
}
