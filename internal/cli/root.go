// Package cli implements the matchcheck command line: it loads
// assertion suites, evaluates them against JSON documents and
// reports the outcome.
package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"digital.vasic.matchers/pkg/assertion"
	"digital.vasic.matchers/pkg/config"
	"digital.vasic.matchers/pkg/httpclient"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/metrics"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version   string
	BuildTime string
}

type app struct {
	fs     afero.Fs
	info   BuildInfo
	cfg    *config.Config
	logger logging.Logger
	engine *assertion.DefaultEngine
	client *httpclient.Client

	recorder  metrics.Recorder
	collector *metrics.Collector
}

func newApp(fs afero.Fs, info BuildInfo) *app {
	return &app{
		fs:       fs,
		info:     info,
		logger:   logging.Discard,
		recorder: metrics.NoopRecorder{},
	}
}

// Execute runs matchcheck with args and returns the exit code.
func Execute(args []string, info BuildInfo) int {
	a := newApp(afero.NewOsFs(), info)
	root := a.rootCommand()
	root.SetArgs(args)
	return a.execute(root)
}

func (a *app) execute(root *cobra.Command) int {
	defer func() { _ = a.logger.Close() }()

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return CodeOf(err)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "matchcheck",
		Short: "Check JSON documents against declarative matcher suites",
		Long: `matchcheck evaluates assertion suites written in YAML or JSON
against JSON documents and reports every failing matcher.

Examples:
  matchcheck run suites/user.yaml --input user.json
  curl -s localhost:8080/users/7 | matchcheck run suites/
  matchcheck check --target 'projects.#.stars' 'sorted:desc' '!empty' -i user.json`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.runCommand(),
		a.checkCommand(),
		a.validateCommand(),
		a.listCommand(),
		a.versionCommand(),
	)
	return root
}

// writeMetrics flushes the collected metrics, if enabled.
func (a *app) writeMetrics() error {
	if a.collector == nil {
		return nil
	}
	if err := a.collector.WriteFile(a.cfg.Output.Metrics); err != nil {
		return withCode(ExitIOError, fmt.Errorf("write metrics: %w", err))
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	a.cfg = cfg

	opts := []logging.Option{
		logging.WithWriter(cmd.ErrOrStderr()),
		logging.WithLevel(cfg.Log.Level),
	}
	if cfg.Log.File != "" {
		opts = append(opts, logging.WithFile(cfg.Log.File))
	}
	a.logger = logging.New(opts...)
	a.engine = assertion.NewEngine(assertion.WithLogger(a.logger))

	clientOpts := []httpclient.ClientOption{
		httpclient.WithTimeout(cfg.HTTP.Timeout),
		httpclient.WithToken(cfg.HTTP.Token),
	}
	for key, value := range cfg.HTTP.Headers {
		clientOpts = append(clientOpts, httpclient.WithHeader(key, value))
	}
	a.client = httpclient.NewClient(clientOpts...)

	if cfg.Output.Metrics != "" {
		a.collector = metrics.NewCollector()
		a.recorder = a.collector
	}

	a.logger.Debug("configuration loaded",
		logging.StringField("format", string(cfg.Output.Format)),
		logging.BoolField("fail_fast", cfg.FailFast),
		logging.LogField("http_headers", httpclient.RedactHeaders(cfg.HTTP.Headers)),
	)
	return nil
}
