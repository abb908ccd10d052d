package collection

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

type membershipKind int

const (
	containOne membershipKind = iota
	containAll
	containAny
)

// MembershipMatcher checks whether elements are present in a
// slice, compared with ==.
type MembershipMatcher[T comparable] struct {
	kind     membershipKind
	elements []T
}

// Contain matches slices that contain element.
func Contain[T comparable](element T) *MembershipMatcher[T] {
	return &MembershipMatcher[T]{kind: containOne, elements: []T{element}}
}

// ContainAll matches slices that contain every one of elements.
// With no elements it always passes.
func ContainAll[T comparable](elements ...T) *MembershipMatcher[T] {
	return &MembershipMatcher[T]{kind: containAll, elements: elements}
}

// ContainAny matches slices that contain at least one of
// elements. With no elements it never passes.
func ContainAny[T comparable](elements ...T) *MembershipMatcher[T] {
	return &MembershipMatcher[T]{kind: containAny, elements: elements}
}

// Test checks membership of the configured elements.
func (m *MembershipMatcher[T]) Test(collection []T) matcher.Result {
	switch m.kind {
	case containAll:
		missing := missingFrom(collection, m.elements)
		failure := fmt.Sprintf(
			"%v should contain all of %v", collection, m.elements,
		)
		if len(missing) > 0 {
			failure += fmt.Sprintf(" but was missing %v", missing)
		}
		return matcher.NewResult(
			len(missing) == 0,
			failure,
			fmt.Sprintf(
				"%v should not contain all of %v",
				collection, m.elements,
			),
		)
	case containAny:
		missing := missingFrom(collection, m.elements)
		return matcher.Formatted(
			len(missing) < len(m.elements),
			"%v should contain any of %v",
			"%v should not contain any of %v",
			collection, m.elements,
		)
	default:
		return matcher.Formatted(
			contains(collection, m.elements[0]),
			"%v should contain %v",
			"%v should not contain %v",
			collection, m.elements[0],
		)
	}
}

// BeEmpty matches slices with no elements.
func BeEmpty[T any]() matcher.Matcher[[]T] {
	return matcher.Func[[]T](func(collection []T) matcher.Result {
		return matcher.Formatted(
			len(collection) == 0,
			"%v should be empty",
			"%v should not be empty",
			collection,
		)
	})
}

// HaveDuplicates matches slices in which some element occurs more
// than once. Elements whose dynamic type is not comparable, such as
// slices held in an interface, never equal anything.
func HaveDuplicates[T comparable]() matcher.Matcher[[]T] {
	return matcher.Func[[]T](func(collection []T) matcher.Result {
		if element, ok := firstRepeat(collection); ok {
			return matcher.NewResult(
				true,
				fmt.Sprintf("%v should have duplicates", collection),
				fmt.Sprintf(
					"%v should not have duplicates but %v was repeated",
					collection, element,
				),
			)
		}
		return matcher.Formatted(
			false,
			"%v should have duplicates",
			"%v should not have duplicates",
			collection,
		)
	})
}

func firstRepeat[T comparable](collection []T) (T, bool) {
	element, ok, hashable := hashedRepeat(collection)
	if hashable {
		return element, ok
	}
	for i := 1; i < len(collection); i++ {
		if contains(collection[:i], collection[i]) {
			return collection[i], true
		}
	}
	var zero T
	return zero, false
}

func hashedRepeat[T comparable](collection []T) (element T, found, hashable bool) {
	defer func() {
		if recover() != nil {
			var zero T
			element, found, hashable = zero, false, false
		}
	}()
	seen := make(map[T]struct{}, len(collection))
	for _, v := range collection {
		if _, ok := seen[v]; ok {
			return v, true, true
		}
		seen[v] = struct{}{}
	}
	var zero T
	return zero, false, true
}

func contains[T comparable](collection []T, element T) bool {
	for _, source := range collection {
		if equal(source, element) {
			return true
		}
	}
	return false
}

// equal reports a == b, treating a runtime comparison panic on
// interface values as inequality.
func equal[T comparable](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func missingFrom[T comparable](collection, elements []T) []T {
	var missing []T
	for _, element := range elements {
		if !contains(collection, element) {
			missing = append(missing, element)
		}
	}
	return missing
}
