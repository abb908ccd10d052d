// Package mtest holds test doubles shared by the matcher packages.
package mtest

import (
	"fmt"
	"sync"
)

// Recorder is a matcher.TestingT that records failures instead of
// stopping the calling goroutine.
type Recorder struct {
	mu       sync.Mutex
	helpers  int
	failures []string
}

// Helper counts calls so tests can check that assertion helpers
// mark themselves.
func (r *Recorder) Helper() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.helpers++
}

// Fatalf records the formatted failure.
func (r *Recorder) Fatalf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

// Failed reports whether any failure was recorded.
func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failures) > 0
}

// Failures returns a copy of the recorded failure messages.
func (r *Recorder) Failures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.failures))
	copy(out, r.failures)
	return out
}

// LastFailure returns the most recent failure, or "" if none.
func (r *Recorder) LastFailure() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.failures) == 0 {
		return ""
	}
	return r.failures[len(r.failures)-1]
}

// HelperCalls returns the number of Helper calls.
func (r *Recorder) HelperCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.helpers
}
