package hive

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

// CreateCmd returns the hive create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new hive in an apiary",
		RunE:  cli.Run(runCreate),
	}

	// Required flags
	cmd.Flags().Int64("apiary", 0, "Apiary ID (required)")
	cmd.Flags().String("name", "", "Hive name (required)")
	for _, name := range []string{"apiary", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().Int64("id", 0, "Explicit hive ID")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().String("image-url", "", "Image URL")

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runCreate(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	apiaryID, _ := cmd.Flags().GetInt64("apiary")
	name, _ := cmd.Flags().GetString("name")
	id, _ := cmd.Flags().GetInt64("id")
	notes, _ := cmd.Flags().GetString("notes")
	imageURL, _ := cmd.Flags().GetString("image-url")
	ds := cliInstance.App.DataSource

	if id == 0 {
		next, err := datasource.AwaitNextHiveID(ctx, ds)
		if err != nil {
			return cli.Fail(formatter, "ID_RESERVATION_ERROR", err)
		}
		id = next
	}

	hive := models.Hive{
		ID:           id,
		ApiaryID:     apiaryID,
		Name:         name,
		ImageURL:     imageURL,
		Notes:        notes,
		LastRevision: time.Now(),
	}

	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.SaveHive(ctx, apiaryID, hive, cb)
	}); err != nil {
		return cli.Fail(formatter, "HIVE_CREATE_ERROR", err)
	}

	return formatter.Render(hive, fmt.Sprintf("✓ Hive '%s' created in apiary %d (ID: %d)", hive.Name, apiaryID, hive.ID))
}
