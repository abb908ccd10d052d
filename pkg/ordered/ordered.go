// Package ordered provides comparison and range matchers for any
// type satisfying cmp.Ordered.
package ordered

import (
	"cmp"
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// Comparison selects the relation checked by a ComparisonMatcher.
type Comparison int

const (
	GreaterThan Comparison = iota
	GreaterThanEqualTo
	LessThan
	LessThanEqualTo
)

// String returns the relation as it appears in messages.
func (c Comparison) String() string {
	switch c {
	case GreaterThan:
		return "greater than"
	case GreaterThanEqualTo:
		return "greater than or equal to"
	case LessThan:
		return "less than"
	case LessThanEqualTo:
		return "less than or equal to"
	default:
		return "unknown"
	}
}

// ComparisonMatcher compares a value against a fixed operand.
type ComparisonMatcher[T cmp.Ordered] struct {
	Comparison Comparison
	Other      T
}

// BeGreaterThan matches values greater than other.
func BeGreaterThan[T cmp.Ordered](other T) *ComparisonMatcher[T] {
	return &ComparisonMatcher[T]{Comparison: GreaterThan, Other: other}
}

// BeGreaterThanEqualTo matches values greater than or equal to other.
func BeGreaterThanEqualTo[T cmp.Ordered](other T) *ComparisonMatcher[T] {
	return &ComparisonMatcher[T]{Comparison: GreaterThanEqualTo, Other: other}
}

// BeLessThan matches values less than other.
func BeLessThan[T cmp.Ordered](other T) *ComparisonMatcher[T] {
	return &ComparisonMatcher[T]{Comparison: LessThan, Other: other}
}

// BeLessThanEqualTo matches values less than or equal to other.
func BeLessThanEqualTo[T cmp.Ordered](other T) *ComparisonMatcher[T] {
	return &ComparisonMatcher[T]{Comparison: LessThanEqualTo, Other: other}
}

// String describes the matcher for failure messages.
func (m *ComparisonMatcher[T]) String() string {
	return fmt.Sprintf("be %s %v", m.Comparison, m.Other)
}

// Test applies the configured relation to value and the operand.
func (m *ComparisonMatcher[T]) Test(value T) matcher.Result {
	var passed bool
	switch m.Comparison {
	case GreaterThan:
		passed = value > m.Other
	case GreaterThanEqualTo:
		passed = value >= m.Other
	case LessThan:
		passed = value < m.Other
	case LessThanEqualTo:
		passed = value <= m.Other
	}

	return matcher.Formatted(
		passed,
		"%v should be %s %v",
		"%v should not be %s %v",
		value, m.Comparison, m.Other,
	)
}
