package hive

import (
	"github.com/spf13/cobra"
)

// HiveCmd returns the hive parent command
func HiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hive",
		Short: "Manage hives",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
