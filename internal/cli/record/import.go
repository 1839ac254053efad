package record

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/datasource"
)

// ImportResult reports a finished import
type ImportResult struct {
	HiveID   int64 `json:"hive_id" yaml:"hive_id"`
	Imported int   `json:"imported" yaml:"imported"`
}

// ImportCmd returns the record import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import readings from a CSV file",
		Long: `Import readings from CSV rows of timestamp,num_bees[,temperature].
Timestamps are RFC 3339. The whole file is saved in one batch: if any
row is rejected nothing is stored. Use --file - to read from stdin.`,
		RunE: cli.Run(runImport),
	}

	cmd.Flags().Int64("hive", 0, "Hive ID (required)")
	cmd.Flags().String("file", "", "CSV file path, or - for stdin (required)")
	for _, name := range []string{"hive", "file"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	hiveID, _ := cmd.Flags().GetInt64("hive")
	path, _ := cmd.Flags().GetString("file")

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return cli.Fail(formatter, "FILE_ERROR", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("Error closing %s: %v", path, err)
			}
		}()
		in = file
	}

	records, err := ParseCSV(in, hiveID)
	if err != nil {
		return cli.Fail(formatter, "INVALID_CSV", cli.WithExitCode(cli.ExitDataErr, err))
	}

	ds := cliInstance.App.DataSource
	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.SaveRecords(ctx, hiveID, records, cb)
	}); err != nil {
		return cli.Fail(formatter, "IMPORT_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	result := ImportResult{HiveID: hiveID, Imported: len(records)}
	return formatter.Render(result, fmt.Sprintf("✓ Imported %d records into hive %d", len(records), hiveID))
}
