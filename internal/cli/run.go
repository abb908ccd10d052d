package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"digital.vasic.matchers/pkg/logging"
)

func (a *app) runCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "run <suite|directory>...",
		Short: "Evaluate suites against a JSON document",
		Long: `Evaluate one or more assertion suites against a JSON document read
from --input or stdin. Each assertion's target is a gjson path.

Examples:
  matchcheck run suites/user.yaml --input user.json
  matchcheck run suites/ -o json < user.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := a.loadSuites(args)
			if err != nil {
				return err
			}
			for _, suite := range suites {
				if err := a.validate(cmd.ErrOrStderr(), suite); err != nil {
					return err
				}
			}

			doc, name, err := a.readInput(cmd, input)
			if err != nil {
				return err
			}

			failed := 0
			for _, suite := range suites {
				summary, err := a.evaluate(cmd, suite, doc, name)
				if err != nil {
					return err
				}
				a.logger.Info("suite evaluated",
					logging.StringField("suite", suite.Name),
					logging.IntField("passed", summary.Passed),
					logging.IntField("failed", summary.Failed),
					logging.DurationField("duration", summary.Duration),
				)
				failed += summary.Failed
				if failed > 0 && a.cfg.FailFast {
					break
				}
			}
			if err := a.writeMetrics(); err != nil {
				return err
			}

			if failed > 0 {
				return withCode(ExitAssertionFailure, fmt.Errorf("%d assertions failed", failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinName, "JSON document to check, - for stdin")
	return cmd
}
