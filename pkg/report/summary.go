package report

import (
	"time"

	"digital.vasic.matchers/pkg/assertion"
)

// Summary aggregates the results of one suite run.
type Summary struct {
	Suite       string             `json:"suite"`
	Source      string             `json:"source,omitempty"`
	Input       string             `json:"input,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
	Duration    time.Duration      `json:"duration"`
	Total       int                `json:"total"`
	Passed      int                `json:"passed"`
	Failed      int                `json:"failed"`
	Results     []assertion.Result `json:"results"`
}

// NewSummary counts results for suite.
func NewSummary(suite *assertion.Suite, results []assertion.Result) Summary {
	s := Summary{
		GeneratedAt: time.Now(),
		Total:       len(results),
		Results:     results,
	}
	if suite != nil {
		s.Suite = suite.Name
		s.Source = suite.Source
	}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// OK reports whether every assertion passed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// PassRate is the passed fraction of all assertions, 0 when
// there are none.
func (s Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total)
}
