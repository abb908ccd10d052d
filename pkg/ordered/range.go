package ordered

import (
	"cmp"
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// Range is a closed [Low, High] or half-open [Low, High) interval.
// A range whose Low is greater than its High contains nothing.
type Range[T cmp.Ordered] struct {
	Low       T
	High      T
	Inclusive bool
}

// Inclusive returns the closed range [low, high].
func Inclusive[T cmp.Ordered](low, high T) Range[T] {
	return Range[T]{Low: low, High: high, Inclusive: true}
}

// Exclusive returns the half-open range [low, high).
func Exclusive[T cmp.Ordered](low, high T) Range[T] {
	return Range[T]{Low: low, High: high}
}

// Contains reports whether value lies in the range.
func (r Range[T]) Contains(value T) bool {
	if r.Low > r.High {
		return false
	}
	if r.Inclusive {
		return r.Low <= value && value <= r.High
	}
	return r.Low <= value && value < r.High
}

// String renders the range as [low, high] or [low, high).
func (r Range[T]) String() string {
	closing := ")"
	if r.Inclusive {
		closing = "]"
	}
	return fmt.Sprintf("[%v, %v%s", r.Low, r.High, closing)
}

// RangeMatcher checks membership of a value in a Range.
type RangeMatcher[T cmp.Ordered] struct {
	Range Range[T]
}

// BeInRange matches values inside r, honouring its inclusivity.
func BeInRange[T cmp.Ordered](r Range[T]) *RangeMatcher[T] {
	return &RangeMatcher[T]{Range: r}
}

// BeInInclusiveRange matches values v with low <= v <= high.
func BeInInclusiveRange[T cmp.Ordered](low, high T) *RangeMatcher[T] {
	return BeInRange(Inclusive(low, high))
}

// BeInExclusiveRange matches values v with low <= v < high.
func BeInExclusiveRange[T cmp.Ordered](low, high T) *RangeMatcher[T] {
	return BeInRange(Exclusive(low, high))
}

// String describes the matcher for failure messages.
func (m *RangeMatcher[T]) String() string {
	return "be in range " + m.Range.String()
}

// Test reports whether value lies in the range.
func (m *RangeMatcher[T]) Test(value T) matcher.Result {
	return matcher.Formatted(
		m.Range.Contains(value),
		"%v should be in range %s",
		"%v should not be in range %s",
		value, m.Range,
	)
}
