package recording

import (
	"github.com/spf13/cobra"
)

// RecordingCmd returns the recording parent command
func RecordingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recording",
		Short: "Inspect recordings of a hive",
	}

	cmd.AddCommand(ShowCmd())

	return cmd
}
