package recording

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/cli/styles"
	"github.com/gobees/gobees/internal/datasource"
	"github.com/gobees/gobees/internal/models"
)

// Summary is a recording together with its statistics
type Summary struct {
	Recording models.Recording      `json:"recording" yaml:"recording"`
	Stats     models.RecordingStats `json:"stats" yaml:"stats"`
}

// ShowCmd returns the recording show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the records and weather of a hive over a range of days",
		Long: `Show the records and weather of a hive between --from and --to.
Both ends are widened to whole days. Dates are YYYY-MM-DD in local time
or RFC 3339; both default to today.`,
		RunE: cli.Run(runShow),
	}

	cmd.Flags().Int64("hive", 0, "Hive ID (required)")
	if err := cmd.MarkFlagRequired("hive"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("from", "", "First day (default today)")
	cmd.Flags().String("to", "", "Last day (default --from)")

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runShow(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	hiveID, _ := cmd.Flags().GetInt64("hive")
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")

	from := time.Now()
	if fromFlag != "" {
		parsed, err := cli.ParseDay(fromFlag)
		if err != nil {
			return cli.Fail(formatter, "INVALID_DATE", err)
		}
		from = parsed
	}

	to := from
	if toFlag != "" {
		parsed, err := cli.ParseDay(toFlag)
		if err != nil {
			return cli.Fail(formatter, "INVALID_DATE", err)
		}
		to = parsed
	}

	// Both ends widen to whole days, so the range is checked by day.
	if models.StartOfDay(to).Before(models.StartOfDay(from)) {
		return cli.Fail(formatter, "INVALID_RANGE",
			cli.WithExitCode(cli.ExitUsage, fmt.Errorf("--to %s is before --from %s", toFlag, fromFlag)))
	}

	rec, err := datasource.AwaitRecording(ctx, cliInstance.App.DataSource, hiveID, from, to)
	if err != nil {
		return cli.Fail(formatter, "RECORDING_NOT_AVAILABLE",
			fmt.Errorf("no records for hive %d between %s and %s: %w",
				hiveID, from.Format(cli.DateLayout), to.Format(cli.DateLayout), err))
	}

	summary := Summary{Recording: rec, Stats: rec.Stats()}
	return formatter.Render(summary, styles.RenderRecordingCard(rec))
}
