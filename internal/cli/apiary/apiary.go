package apiary

import (
	"github.com/spf13/cobra"
)

// ApiaryCmd returns the apiary parent command
func ApiaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apiary",
		Short: "Manage apiaries",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(DeleteAllCmd())

	return cmd
}
