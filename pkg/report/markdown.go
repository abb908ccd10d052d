package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// MarkdownReporter renders a Summary as a Markdown document with
// an assertion table and a statistics table.
type MarkdownReporter struct{}

// NewMarkdownReporter creates a Markdown reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{}
}

// Report writes summary to w.
func (MarkdownReporter) Report(w io.Writer, summary Summary) error {
	_, err := io.WriteString(w, generateMarkdown(summary))
	return err
}

func generateMarkdown(summary Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", summary.Suite)
	if summary.Source != "" {
		fmt.Fprintf(&sb, "**Suite:** %s\n\n", summary.Source)
	}
	if summary.Input != "" {
		fmt.Fprintf(&sb, "**Input:** %s\n\n", summary.Input)
	}
	fmt.Fprintf(&sb, "**Generated:** %s\n\n",
		summary.GeneratedAt.Format(time.RFC3339))

	sb.WriteString("## Assertions\n\n")
	sb.WriteString("| Assertion | Target | Status | Message |\n")
	sb.WriteString("|-----------|--------|--------|---------|\n")
	for _, r := range summary.Results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			r.Type, escapeCell(r.Target), status, escapeCell(r.Message))
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(&sb, "| Total | %d |\n", summary.Total)
	fmt.Fprintf(&sb, "| Passed | %d |\n", summary.Passed)
	fmt.Fprintf(&sb, "| Failed | %d |\n", summary.Failed)
	fmt.Fprintf(&sb, "| Pass Rate | %.0f%% |\n", summary.PassRate()*100)
	fmt.Fprintf(&sb, "| Duration | %v |\n", summary.Duration)

	return sb.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
