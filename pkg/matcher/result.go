package matcher

import "fmt"

// Polarity selects which side of a matcher an assertion checks.
type Polarity int

const (
	// Positive asserts that the matcher passes.
	Positive Polarity = iota
	// Negative asserts that the matcher does not pass.
	Negative
)

// String returns the string representation of a polarity.
func (p Polarity) String() string {
	switch p {
	case Positive:
		return "should"
	case Negative:
		return "should not"
	default:
		return "unknown"
	}
}

// Result is the immutable outcome of a single Matcher.Test call.
// Both messages are rendered up front; the dispatcher picks one
// based on the polarity of the assertion, never on Passed alone.
type Result struct {
	passed                bool
	failureMessage        string
	negatedFailureMessage string
}

// NewResult creates a Result from already rendered messages.
func NewResult(
	passed bool,
	failureMessage, negatedFailureMessage string,
) Result {
	return Result{
		passed:                passed,
		failureMessage:        failureMessage,
		negatedFailureMessage: negatedFailureMessage,
	}
}

// Formatted creates a Result whose two messages are rendered with
// the same arguments, which keeps positive and negated text
// consistent.
func Formatted(
	passed bool,
	failureFormat, negatedFormat string,
	args ...any,
) Result {
	return NewResult(
		passed,
		fmt.Sprintf(failureFormat, args...),
		fmt.Sprintf(negatedFormat, args...),
	)
}

// Passed reports whether the matcher's predicate held.
func (r Result) Passed() bool { return r.passed }

// FailureMessage is shown when a positive assertion fails.
func (r Result) FailureMessage() string { return r.failureMessage }

// NegatedFailureMessage is shown when a negative assertion
// unexpectedly succeeds.
func (r Result) NegatedFailureMessage() string {
	return r.negatedFailureMessage
}

// Holds reports whether an assertion of the given polarity is
// satisfied by this result.
func (r Result) Holds(p Polarity) bool {
	if p == Negative {
		return !r.passed
	}
	return r.passed
}

// Message returns the message surfaced when an assertion of the
// given polarity fails.
func (r Result) Message(p Polarity) string {
	if p == Negative {
		return r.negatedFailureMessage
	}
	return r.failureMessage
}

// Negate returns the result of the inverse predicate: Passed is
// flipped and the two messages trade places.
func (r Result) Negate() Result {
	return Result{
		passed:                !r.passed,
		failureMessage:        r.negatedFailureMessage,
		negatedFailureMessage: r.failureMessage,
	}
}
