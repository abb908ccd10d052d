package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/report"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	f := pflag.NewFlagSet("matchcheck", pflag.ContinueOnError)
	RegisterFlags(f)
	require.NoError(t, f.Parse(args))
	return Load(f)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matchcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, logging.LevelWarn, c.Log.Level)
	assert.Empty(t, c.Log.File)
	assert.Equal(t, report.FormatConsole, c.Output.Format)
	assert.Equal(t, ColorAuto, c.Output.Color)
	assert.False(t, c.Output.Verbose)
	assert.False(t, c.FailFast)
	assert.Equal(t, 30*time.Second, c.HTTP.Timeout)
	assert.Empty(t, c.HTTP.Token)
	assert.Empty(t, c.Output.Metrics)
}

func TestLoad_Flags(t *testing.T) {
	tests := map[string]struct {
		args []string
		want func(t *testing.T, c *Config)
	}{
		"log-level": {
			args: []string{"--log-level", "debug"},
			want: func(t *testing.T, c *Config) { assert.Equal(t, logging.LevelDebug, c.Log.Level) },
		},
		"format": {
			args: []string{"-o", "md"},
			want: func(t *testing.T, c *Config) { assert.Equal(t, report.FormatMarkdown, c.Output.Format) },
		},
		"color": {
			args: []string{"--color", "never"},
			want: func(t *testing.T, c *Config) { assert.Equal(t, ColorNever, c.Output.Color) },
		},
		"verbose": {
			args: []string{"-v"},
			want: func(t *testing.T, c *Config) { assert.True(t, c.Output.Verbose) },
		},
		"fail-fast": {
			args: []string{"--fail-fast"},
			want: func(t *testing.T, c *Config) { assert.True(t, c.FailFast) },
		},
		"history": {
			args: []string{"--history", "runs.jsonl"},
			want: func(t *testing.T, c *Config) { assert.Equal(t, "runs.jsonl", c.Output.History) },
		},
		"metrics": {
			args: []string{"--metrics", "matchcheck.prom"},
			want: func(t *testing.T, c *Config) { assert.Equal(t, "matchcheck.prom", c.Output.Metrics) },
		},
		"timeout": {
			args: []string{"--timeout", "2s"},
			want: func(t *testing.T, c *Config) { assert.Equal(t, 2*time.Second, c.HTTP.Timeout) },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := load(t, tt.args...)
			require.NoError(t, err)
			tt.want(t, c)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: error
output:
  format: json
  color: always
fail_fast: true
http:
  timeout: 1m
  headers:
    x-trace: abc
`)

	c, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, logging.LevelError, c.Log.Level)
	assert.Equal(t, report.FormatJSON, c.Output.Format)
	assert.Equal(t, ColorAlways, c.Output.Color)
	assert.True(t, c.FailFast)
	assert.Equal(t, time.Minute, c.HTTP.Timeout)
	assert.Equal(t, map[string]string{"x-trace": "abc"}, c.HTTP.Headers)
}

func TestLoad_TokenFromEnv(t *testing.T) {
	t.Setenv("MATCHCHECK_HTTP_TOKEN", "jwt-abc")

	c, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", c.HTTP.Token)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "output:\n  format: json\nlog:\n  level: error\n")
	t.Setenv("MATCHCHECK_LOG_LEVEL", "info")

	c, err := load(t, "--config", path, "--format", "markdown")
	require.NoError(t, err)
	assert.Equal(t, report.FormatMarkdown, c.Output.Format, "flag beats file")
	assert.Equal(t, logging.LevelInfo, c.Log.Level, "env beats file")
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]struct {
		config string
		args   []string
		msg    string
	}{
		"unknown key": {
			config: "output:\n  colour: always\n",
			msg:    "parse configuration",
		},
		"bad format": {
			args: []string{"--format", "xml"},
			msg:  `unknown output format: "xml"`,
		},
		"bad level": {
			args: []string{"--log-level", "chatty"},
			msg:  `unknown log level: "chatty"`,
		},
		"bad color": {
			config: "output:\n  color: sometimes\n",
			msg:    `unknown color mode: "sometimes"`,
		},
		"missing file": {
			args: []string{"--config", "/does/not/exist.yaml"},
			msg:  "load configuration",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			args := tt.args
			if tt.config != "" {
				args = append(args, "--config", writeConfig(t, tt.config))
			}
			_, err := load(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestConfig_ConsoleOptions(t *testing.T) {
	c := &Config{}
	assert.Empty(t, c.ConsoleOptions())

	c.Output.Color = ColorNever
	c.Output.Verbose = true
	assert.Len(t, c.ConsoleOptions(), 2)

	c.Output.Color = ColorAlways
	c.Output.Verbose = false
	assert.Len(t, c.ConsoleOptions(), 1)
}
