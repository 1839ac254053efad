package apiary

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

// CreateCmd returns the apiary create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new apiary",
		Long: `Create a new apiary. The id is reserved from the apiary sequence
unless --id is given, in which case an existing apiary with that id is replaced.`,
		RunE: cli.Run(runCreate),
	}

	// Required flags
	cmd.Flags().String("name", "", "Apiary name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Int64("id", 0, "Explicit apiary ID")
	cmd.Flags().Float64("lat", 0, "Latitude")
	cmd.Flags().Float64("long", 0, "Longitude")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().String("image-url", "", "Image URL")

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runCreate(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	name, _ := cmd.Flags().GetString("name")
	id, _ := cmd.Flags().GetInt64("id")
	notes, _ := cmd.Flags().GetString("notes")
	imageURL, _ := cmd.Flags().GetString("image-url")
	ds := cliInstance.App.DataSource

	if id == 0 {
		next, err := datasource.AwaitNextApiaryID(ctx, ds)
		if err != nil {
			return cli.Fail(formatter, "ID_RESERVATION_ERROR", err)
		}
		id = next
	}

	apiary := models.Apiary{
		ID:           id,
		Name:         name,
		ImageURL:     imageURL,
		LocationLat:  cli.OptionalFloat(cmd, "lat"),
		LocationLong: cli.OptionalFloat(cmd, "long"),
		Notes:        notes,
		LastRevision: time.Now(),
	}

	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.SaveApiary(ctx, apiary, cb)
	}); err != nil {
		return cli.Fail(formatter, "APIARY_CREATE_ERROR", err)
	}

	return formatter.Render(apiary, fmt.Sprintf("✓ Apiary '%s' created successfully (ID: %d)", apiary.Name, apiary.ID))
}
