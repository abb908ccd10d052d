package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendToHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	s := makeSummary()

	require.NoError(t, AppendToHistory(path, s))
	require.NoError(t, AppendToHistory(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry HistoricalEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "user api", entry.Suite)
	assert.Equal(t, "user.json", entry.Input)
	assert.False(t, entry.Passed)
	assert.Equal(t, "1.5ms", entry.Duration)
	assert.Equal(t, 2, entry.AssertionsPassed)
	assert.Equal(t, 3, entry.AssertionsTotal)
	assert.True(t, entry.Timestamp.Equal(s.GeneratedAt))
}

func TestAppendToHistory_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "history.jsonl")
	err := AppendToHistory(path, makeSummary())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open history file")
}
