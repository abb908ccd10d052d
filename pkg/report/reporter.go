// Package report renders the outcome of evaluating an assertion
// suite for people (console, Markdown) and for machines (JSON).
package report

import (
	"fmt"
	"io"
	"strings"
)

// Reporter writes a Summary to w.
type Reporter interface {
	Report(w io.Writer, summary Summary) error
}

// Format names an output format.
type Format string

const (
	FormatConsole  Format = "console"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats.
var Formats = []Format{FormatConsole, FormatJSON, FormatMarkdown}

// ParseFormat resolves a case-insensitive format name. "md" is
// accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatConsole, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", s)
	}
}

// New returns the Reporter for format. Console options are
// ignored by the other formats.
func New(format Format, opts ...ConsoleOption) (Reporter, error) {
	switch format {
	case FormatConsole:
		return NewConsoleReporter(opts...), nil
	case FormatJSON:
		return NewJSONReporter(true), nil
	case FormatMarkdown:
		return NewMarkdownReporter(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so a Format
// can be decoded straight from configuration.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
