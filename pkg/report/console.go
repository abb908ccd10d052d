package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsoleOption configures a ConsoleReporter.
type ConsoleOption func(*ConsoleReporter)

// WithColor forces colour on or off. Without it colour is used
// only when the destination is a terminal.
func WithColor(enabled bool) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.color = &enabled
	}
}

// WithNoColor disables colour.
func WithNoColor() ConsoleOption {
	return WithColor(false)
}

// WithVerbose lists passing assertions as well as failures.
func WithVerbose() ConsoleOption {
	return func(r *ConsoleReporter) {
		r.verbose = true
	}
}

// ConsoleReporter prints one line per assertion and a closing
// count.
type ConsoleReporter struct {
	color   *bool
	verbose bool
}

// NewConsoleReporter creates a console reporter.
func NewConsoleReporter(opts ...ConsoleOption) *ConsoleReporter {
	r := &ConsoleReporter{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type palette struct {
	pass, fail, faint, bold *color.Color
}

func (r *ConsoleReporter) palette(w io.Writer) palette {
	p := palette{
		pass:  color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		faint: color.New(color.Faint),
		bold:  color.New(color.Bold),
	}

	enabled := isTerminal(w)
	if r.color != nil {
		enabled = *r.color
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.faint, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Report writes summary to w.
func (r *ConsoleReporter) Report(w io.Writer, summary Summary) error {
	p := r.palette(w)

	title := p.bold.Sprint(summary.Suite)
	if summary.Source != "" {
		title += p.faint.Sprintf(" (%s)", summary.Source)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	for _, res := range summary.Results {
		label := res.Type
		if res.Target != "" {
			label += " " + res.Target
		}

		var err error
		switch {
		case !res.Passed:
			_, err = fmt.Fprintf(w, "  %s %s: %s\n", p.fail.Sprint("✗"), label, res.Message)
		case r.verbose:
			_, err = fmt.Fprintf(w, "  %s %s\n", p.pass.Sprint("✓"), label)
		}
		if err != nil {
			return err
		}
	}

	status := p.pass
	if !summary.OK() {
		status = p.fail
	}
	_, err := fmt.Fprintf(
		w, "%s %s\n",
		status.Sprintf("%d of %d assertions passed", summary.Passed, summary.Total),
		p.faint.Sprintf("in %s", summary.Duration),
	)
	return err
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return true
	}
	return false
}
