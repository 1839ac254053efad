package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli/apiary"
	"github.com/gobees/gobees/internal/cli/hive"
	"github.com/gobees/gobees/internal/cli/record"
	"github.com/gobees/gobees/internal/cli/recording"
	"github.com/gobees/gobees/internal/cli/stats"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the gobees command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gobees",
		Short: "GoBees - beehive activity records",
		Long: `GoBees stores apiaries, hives and bee counter readings in a local
SQLite database and summarises them per day alongside weather data.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(apiary.ApiaryCmd())
	cmd.AddCommand(hive.HiveCmd())
	cmd.AddCommand(record.RecordCmd())
	cmd.AddCommand(recording.RecordingCmd())
	cmd.AddCommand(stats.StatsCmd())

	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}
