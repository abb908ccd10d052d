package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// HistoricalEntry records one suite run in the history log.
type HistoricalEntry struct {
	Timestamp        time.Time `json:"timestamp"`
	Suite            string    `json:"suite"`
	Source           string    `json:"source,omitempty"`
	Input            string    `json:"input,omitempty"`
	Passed           bool      `json:"passed"`
	Duration         string    `json:"duration"`
	AssertionsPassed int       `json:"assertions_passed"`
	AssertionsTotal  int       `json:"assertions_total"`
}

// AppendToHistory adds an entry for summary to the log stored at
// historyPath. Each entry is a single JSON line.
func AppendToHistory(historyPath string, summary Summary) error {
	entry := HistoricalEntry{
		Timestamp:        summary.GeneratedAt,
		Suite:            summary.Suite,
		Source:           summary.Source,
		Input:            summary.Input,
		Passed:           summary.OK(),
		Duration:         summary.Duration.String(),
		AssertionsPassed: summary.Passed,
		AssertionsTotal:  summary.Total,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
