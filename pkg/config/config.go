// Package config loads matchcheck settings from defaults, an
// optional configuration file, MATCHCHECK_* environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/report"
)

// EnvPrefix prefixes environment overrides, e.g.
// MATCHCHECK_OUTPUT_FORMAT=json.
const EnvPrefix = "MATCHCHECK"

// DefaultFileName is looked up in the working directory when no
// configuration file is given.
const DefaultFileName = "matchcheck"

// Config holds the decoded settings.
type Config struct {
	Log struct {
		Level logging.LogLevel `mapstructure:"level"`
		File  string           `mapstructure:"file"`
	} `mapstructure:"log"`

	Output struct {
		Format  report.Format `mapstructure:"format"`
		Color   ColorMode     `mapstructure:"color"`
		Verbose bool          `mapstructure:"verbose"`
		History string        `mapstructure:"history"`
		Metrics string        `mapstructure:"metrics"`
	} `mapstructure:"output"`

	HTTP struct {
		Timeout time.Duration     `mapstructure:"timeout"`
		Token   string            `mapstructure:"token"`
		Headers map[string]string `mapstructure:"headers"`
	} `mapstructure:"http"`

	FailFast bool `mapstructure:"fail_fast"`
}

// flagNames maps configuration keys to the flags bound to them.
var flagNames = map[string]string{
	"log.level":      "log-level",
	"log.file":       "log-file",
	"output.format":  "format",
	"output.color":   "color",
	"output.verbose": "verbose",
	"output.history": "history",
	"output.metrics": "metrics",
	"http.timeout":   "timeout",
	"fail_fast":      "fail-fast",
}

var defaults = map[string]any{
	"log.level":      "warn",
	"log.file":       "",
	"output.format":  string(report.FormatConsole),
	"output.color":   string(ColorAuto),
	"output.verbose": false,
	"output.history": "",
	"output.metrics": "",
	"http.timeout":   "30s",
	"http.token":     "",
	"fail_fast":      false,
}

// RegisterFlags defines the flags understood by Load on f.
func RegisterFlags(f *pflag.FlagSet) {
	f.String("config", "", "configuration file (default ./matchcheck.yaml if present)")
	f.String("log-level", "warn", "log level: debug, info, warn, error or silent")
	f.String("log-file", "", "append JSON logs to this file instead of stderr")
	f.StringP("format", "o", string(report.FormatConsole), "output format: console, json or markdown")
	f.String("color", string(ColorAuto), "colour output: auto, always or never")
	f.BoolP("verbose", "v", false, "list passing assertions too")
	f.String("history", "", "append a JSON line per run to this file")
	f.String("metrics", "", "write Prometheus metrics to this file")
	f.Duration("timeout", 30*time.Second, "timeout for fetching http(s) inputs")
	f.Bool("fail-fast", false, "stop at the first failing assertion")
}

// Load resolves the configuration for the flags in f, which must
// have been registered with RegisterFlags and parsed.
func Load(f *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	for key, name := range flagNames {
		if flag := f.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := f.Lookup("config"); file != nil && file.Value.String() != "" {
		v.SetConfigFile(file.Value.String())
	} else {
		v.SetConfigName(DefaultFileName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// The configuration file is optional
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}

	options := []viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		)),
	}

	var config Config
	if err := v.UnmarshalExact(&config, options...); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return &config, nil
}

// ColorMode selects when console output is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	switch mode := ColorMode(strings.ToLower(string(text))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		*m = mode
		return nil
	default:
		return fmt.Errorf("unknown color mode: %q", text)
	}
}

// ConsoleOptions translates the output settings into console
// reporter options.
func (c *Config) ConsoleOptions() []report.ConsoleOption {
	var opts []report.ConsoleOption
	switch c.Output.Color {
	case ColorAlways:
		opts = append(opts, report.WithColor(true))
	case ColorNever:
		opts = append(opts, report.WithNoColor())
	}
	if c.Output.Verbose {
		opts = append(opts, report.WithVerbose())
	}
	return opts
}
