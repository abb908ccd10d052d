package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered assertion types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.engine.Types() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return withCode(ExitIOError, err)
				}
			}
			return nil
		},
	}
}
