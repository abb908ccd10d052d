package collection

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

type sizeKind int

const (
	sizeExact sizeKind = iota
	sizeAtLeast
	sizeAtMost
	sizeInclusive
	sizeExclusive
)

// SizeMatcher compares the element count of a slice, never its
// capacity.
type SizeMatcher[T any] struct {
	kind sizeKind
	size int
	high int
}

// HaveSize matches slices with exactly size elements.
func HaveSize[T any](size int) *SizeMatcher[T] {
	return &SizeMatcher[T]{kind: sizeExact, size: size}
}

// HaveAtLeastSize matches slices with size or more elements.
func HaveAtLeastSize[T any](size int) *SizeMatcher[T] {
	return &SizeMatcher[T]{kind: sizeAtLeast, size: size}
}

// HaveAtMostSize matches slices with size or fewer elements.
func HaveAtMostSize[T any](size int) *SizeMatcher[T] {
	return &SizeMatcher[T]{kind: sizeAtMost, size: size}
}

// HaveSizeInInclusiveRange matches slices whose length is within
// [low, high].
func HaveSizeInInclusiveRange[T any](low, high int) *SizeMatcher[T] {
	return &SizeMatcher[T]{kind: sizeInclusive, size: low, high: high}
}

// HaveSizeInExclusiveRange matches slices whose length is within
// [low, high).
func HaveSizeInExclusiveRange[T any](low, high int) *SizeMatcher[T] {
	return &SizeMatcher[T]{kind: sizeExclusive, size: low, high: high}
}

// BeSameSizeAs matches slices with as many elements as other,
// whatever other's element type.
func BeSameSizeAs[T, U any](other []U) *SizeMatcher[T] {
	return HaveSize[T](len(other))
}

// String describes the matcher for failure messages.
func (m *SizeMatcher[T]) String() string {
	return "have size " + m.expectation()
}

// Test compares len(collection) with the configured size.
func (m *SizeMatcher[T]) Test(collection []T) matcher.Result {
	n := len(collection)

	var passed bool
	switch m.kind {
	case sizeAtLeast:
		passed = n >= m.size
	case sizeAtMost:
		passed = n <= m.size
	case sizeInclusive:
		passed = m.size <= n && n <= m.high
	case sizeExclusive:
		passed = m.size <= n && n < m.high
	default:
		passed = n == m.size
	}

	return matcher.Formatted(
		passed,
		"%v should have size %s but was %d",
		"%v should not have size %s but was %d",
		collection, m.expectation(), n,
	)
}

func (m *SizeMatcher[T]) expectation() string {
	switch m.kind {
	case sizeAtLeast:
		return fmt.Sprintf("at least %d", m.size)
	case sizeAtMost:
		return fmt.Sprintf("at most %d", m.size)
	case sizeInclusive:
		return fmt.Sprintf("in [%d, %d]", m.size, m.high)
	case sizeExclusive:
		return fmt.Sprintf("in [%d, %d)", m.size, m.high)
	default:
		return fmt.Sprintf("%d", m.size)
	}
}
