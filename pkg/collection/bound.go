package collection

import (
	"cmp"
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// BoundKind selects which side of a bound is checked.
type BoundKind int

const (
	// Upper requires every element to be less than or equal to
	// the bound.
	Upper BoundKind = iota
	// Lower requires every element to be greater than or equal to
	// the bound.
	Lower
)

// String returns the string representation of a bound kind.
func (k BoundKind) String() string {
	switch k {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "unknown"
	}
}

// BoundMatcher checks that all elements of a slice lie on one side
// of a bound. An empty slice satisfies any bound.
type BoundMatcher[T any] struct {
	Kind    BoundKind
	Bound   T
	compare func(a, b T) int
}

// HaveUpperBound matches slices whose elements are all <= bound.
func HaveUpperBound[T cmp.Ordered](bound T) *BoundMatcher[T] {
	return HaveUpperBoundFunc(bound, cmp.Compare[T])
}

// HaveLowerBound matches slices whose elements are all >= bound.
func HaveLowerBound[T cmp.Ordered](bound T) *BoundMatcher[T] {
	return HaveLowerBoundFunc(bound, cmp.Compare[T])
}

// HaveUpperBoundFunc is HaveUpperBound for element types ordered
// by compare, which follows the cmp.Compare convention.
func HaveUpperBoundFunc[T any](
	bound T, compare func(a, b T) int,
) *BoundMatcher[T] {
	return &BoundMatcher[T]{Kind: Upper, Bound: bound, compare: compare}
}

// HaveLowerBoundFunc is HaveLowerBound for element types ordered
// by compare.
func HaveLowerBoundFunc[T any](
	bound T, compare func(a, b T) int,
) *BoundMatcher[T] {
	return &BoundMatcher[T]{Kind: Lower, Bound: bound, compare: compare}
}

// String describes the matcher for failure messages.
func (m *BoundMatcher[T]) String() string {
	return fmt.Sprintf("have %s bound %v", m.Kind, m.Bound)
}

// Test reports whether every element respects the bound. The
// failure message names the first violating element.
func (m *BoundMatcher[T]) Test(collection []T) matcher.Result {
	violation, found := m.firstViolation(collection)

	failure := fmt.Sprintf(
		"%v should have %s bound %v",
		collection, m.Kind, m.Bound,
	)
	if found {
		relation := "greater"
		if m.Kind == Lower {
			relation = "less"
		}
		failure += fmt.Sprintf(
			" but %v was %s", violation, relation,
		)
	}

	return matcher.NewResult(
		!found,
		failure,
		fmt.Sprintf(
			"%v should not have %s bound %v",
			collection, m.Kind, m.Bound,
		),
	)
}

func (m *BoundMatcher[T]) firstViolation(collection []T) (T, bool) {
	for _, element := range collection {
		c := m.compare(element, m.Bound)
		if (m.Kind == Upper && c > 0) || (m.Kind == Lower && c < 0) {
			return element, true
		}
	}
	var zero T
	return zero, false
}
