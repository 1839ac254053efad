package record

import (
	"github.com/spf13/cobra"
)

// RecordCmd returns the record parent command
func RecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Store bee counter readings",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ImportCmd())

	return cmd
}
