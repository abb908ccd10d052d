package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <suite|directory>...",
		Short: "Validate suites without evaluating them",
		Long: `Validate suite files: every assertion must have a target and a known
type, and its value and params must build a matcher.

Examples:
  matchcheck validate suites/user.yaml
  matchcheck validate suites/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := a.loadSuites(args)
			if err != nil {
				return err
			}

			invalid := 0
			for _, suite := range suites {
				if err := a.validate(cmd.ErrOrStderr(), suite); err != nil {
					invalid++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", suite.Source)
			}

			if invalid > 0 {
				return withCode(ExitParseError, fmt.Errorf("%d of %d suites invalid", invalid, len(suites)))
			}
			return nil
		},
	}
}
