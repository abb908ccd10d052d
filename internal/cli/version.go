package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "matchcheck version %s\n", a.info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", a.info.BuildTime)
		},
	}
}
