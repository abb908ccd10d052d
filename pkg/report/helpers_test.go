package report

import (
	"time"

	"digital.vasic.matchers/pkg/assertion"
)

func makeSummary() Summary {
	suite := &assertion.Suite{Name: "user api", Source: "suites/users.yaml"}
	s := NewSummary(suite, []assertion.Result{
		{Type: "equal", Target: "id", Passed: true},
		{
			Type:    "greater_than",
			Target:  "projects[1].stars",
			Message: "8 should be greater than 10",
		},
		{Type: "not_empty", Target: "name", Passed: true},
	})
	s.Input = "user.json"
	s.GeneratedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	s.Duration = 1500 * time.Microsecond
	return s
}
