package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownReporter().Report(&buf, makeSummary()))

	out := buf.String()
	assert.Contains(t, out, "# user api\n")
	assert.Contains(t, out, "**Input:** user.json")
	assert.Contains(t, out, "**Generated:** 2026-03-14T09:26:53Z")
	assert.Contains(t, out, "| equal | id | PASS |  |\n")
	assert.Contains(t, out, "| greater_than | projects[1].stars | FAIL | 8 should be greater than 10 |\n")
	assert.Contains(t, out, "| Pass Rate | 67% |")
	assert.Contains(t, out, "| Duration | 1.5ms |")
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, `a \| b c`, escapeCell("a | b\nc"))
}
