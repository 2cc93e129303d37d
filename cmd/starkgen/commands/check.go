package commands

import (
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Expand in memory and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(args, false)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when expansion reports diagnostics")
	return cmd
}
