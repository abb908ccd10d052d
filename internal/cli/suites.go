package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"digital.vasic.matchers/pkg/assertion"
	"digital.vasic.matchers/pkg/httpclient"
	"digital.vasic.matchers/pkg/jsonmatch"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/report"
)

const stdinName = "-"

// loadSuites reads every suite named by paths. Directories
// contribute their top-level suite files.
func (a *app) loadSuites(paths []string) ([]*assertion.Suite, error) {
	var suites []*assertion.Suite
	for _, p := range paths {
		isDir, err := afero.IsDir(a.fs, p)
		if err != nil {
			return nil, withCode(ExitIOError, fmt.Errorf("stat %s: %w", p, err))
		}

		if isDir {
			found, err := assertion.LoadSuiteDir(a.fs, p)
			if err != nil {
				return nil, withCode(ExitParseError, err)
			}
			if len(found) == 0 {
				return nil, withCode(ExitParseError, fmt.Errorf("no suite files found in %s", p))
			}
			suites = append(suites, found...)
			continue
		}

		suite, err := assertion.LoadSuiteFile(a.fs, p)
		if err != nil {
			return nil, withCode(ExitParseError, err)
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// validate reports every problem of suite on w and fails if there
// is any.
func (a *app) validate(w io.Writer, suite *assertion.Suite) error {
	errs := assertion.ValidateSuite(a.engine, suite)
	for _, e := range errs {
		fmt.Fprintf(w, "Error in %s: %v\n", suite.Source, e)
	}
	if len(errs) > 0 {
		return withCode(ExitParseError, fmt.Errorf("%s: %d validation errors", suite.Source, len(errs)))
	}
	return nil
}

// readInput reads the JSON document from name, fetching http(s)
// URLs, or from stdin when name is empty or "-".
func (a *app) readInput(cmd *cobra.Command, name string) ([]byte, string, error) {
	var (
		doc []byte
		err error
	)
	switch {
	case name == "" || name == stdinName:
		name = "stdin"
		doc, err = io.ReadAll(cmd.InOrStdin())
	case httpclient.IsURL(name):
		url := name
		name = httpclient.RedactURL(url)
		a.logger.Debug("fetching input", logging.StringField("url", name))
		doc, err = a.client.Get(cmd.Context(), url)
	default:
		doc, err = afero.ReadFile(a.fs, name)
	}
	if err != nil {
		return nil, name, withCode(ExitIOError, fmt.Errorf("read input %s: %w", name, err))
	}

	if err := matcher.Check(doc, jsonmatch.BeValidJSON(), matcher.Positive); err != nil {
		return nil, name, withCode(ExitParseError, fmt.Errorf("input %s: %w", name, err))
	}
	return doc, name, nil
}

// evaluate runs suite against doc, writes the report and returns
// the summary. With fail_fast the results stop at the first
// failure.
func (a *app) evaluate(
	cmd *cobra.Command, suite *assertion.Suite, doc []byte, input string,
) (report.Summary, error) {
	start := time.Now()
	results := assertion.EvaluateDocument(a.engine, suite, doc)
	if a.cfg.FailFast {
		for i, r := range results {
			if !r.Passed {
				results = results[:i+1]
				break
			}
		}
	}

	summary := report.NewSummary(suite, results)
	summary.Input = input
	summary.Duration = time.Since(start)

	for _, r := range results {
		a.recorder.RecordAssertion(suite.Name, r.Type, r.Passed)
	}
	a.recorder.RecordSuite(suite.Name, summary.Duration, summary.Failed)

	reporter, err := report.New(a.cfg.Output.Format, a.cfg.ConsoleOptions()...)
	if err != nil {
		return summary, withCode(ExitConfigError, err)
	}
	if err := reporter.Report(cmd.OutOrStdout(), summary); err != nil {
		return summary, withCode(ExitIOError, fmt.Errorf("write report: %w", err))
	}

	if a.cfg.Output.History != "" {
		if err := report.AppendToHistory(a.cfg.Output.History, summary); err != nil {
			return summary, withCode(ExitIOError, err)
		}
	}
	return summary, nil
}
