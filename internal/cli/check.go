package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"digital.vasic.matchers/pkg/assertion"
)

func (a *app) checkCommand() *cobra.Command {
	var input, target string

	cmd := &cobra.Command{
		Use:   "check <assertion>...",
		Short: "Evaluate compact assertions without a suite file",
		Long: `Evaluate assertions written as type:value against one target of a
JSON document. A leading ! negates an assertion.

Examples:
  matchcheck check --target name 'prefix:Ada' -i user.json
  matchcheck check --target roles 'contains_all:admin,dev' '!contains:root' < user.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := &assertion.Suite{
				Name:   "check " + target,
				Source: "command line",
			}
			for _, arg := range args {
				suite.Assertions = append(suite.Assertions, assertion.ParseDefinition(target, arg))
			}
			if err := a.validate(cmd.ErrOrStderr(), suite); err != nil {
				return err
			}

			doc, name, err := a.readInput(cmd, input)
			if err != nil {
				return err
			}

			summary, err := a.evaluate(cmd, suite, doc, name)
			if err != nil {
				return err
			}
			if err := a.writeMetrics(); err != nil {
				return err
			}
			if !summary.OK() {
				return withCode(ExitAssertionFailure, fmt.Errorf("%d assertions failed", summary.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinName, "JSON document to check, - for stdin")
	cmd.Flags().StringVarP(&target, "target", "t", "@this", "gjson path of the value to check")
	return cmd
}
