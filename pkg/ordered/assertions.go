package ordered

import (
	"cmp"

	"digital.vasic.matchers/pkg/matcher"
)

// Assertion chains ordering assertions on a single value.
type Assertion[T cmp.Ordered] struct {
	t     matcher.TestingT
	value T
}

// That starts a chain of assertions on value.
func That[T cmp.Ordered](t matcher.TestingT, value T) *Assertion[T] {
	return &Assertion[T]{t: t, value: value}
}

func (a *Assertion[T]) should(m matcher.Matcher[T]) *Assertion[T] {
	a.t.Helper()
	matcher.Should(a.t, a.value, m)
	return a
}

func (a *Assertion[T]) shouldNot(m matcher.Matcher[T]) *Assertion[T] {
	a.t.Helper()
	matcher.ShouldNot(a.t, a.value, m)
	return a
}

// ShouldBeGreaterThan asserts that the value should be greater than other.
func (a *Assertion[T]) ShouldBeGreaterThan(other T) *Assertion[T] {
	a.t.Helper()
	return a.should(BeGreaterThan(other))
}

// ShouldBeGreaterThanEqualTo asserts that the value should be greater than or equal to other.
func (a *Assertion[T]) ShouldBeGreaterThanEqualTo(other T) *Assertion[T] {
	a.t.Helper()
	return a.should(BeGreaterThanEqualTo(other))
}

// ShouldBeLessThan asserts that the value should be less than other.
func (a *Assertion[T]) ShouldBeLessThan(other T) *Assertion[T] {
	a.t.Helper()
	return a.should(BeLessThan(other))
}

// ShouldBeLessThanEqualTo asserts that the value should be less than or equal to other.
func (a *Assertion[T]) ShouldBeLessThanEqualTo(other T) *Assertion[T] {
	a.t.Helper()
	return a.should(BeLessThanEqualTo(other))
}

// ShouldNotBeGreaterThan asserts that the value should not be greater than other.
func (a *Assertion[T]) ShouldNotBeGreaterThan(other T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(BeGreaterThan(other))
}

// ShouldNotBeGreaterThanEqualTo asserts that the value should not be greater than or equal to other.
func (a *Assertion[T]) ShouldNotBeGreaterThanEqualTo(other T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(BeGreaterThanEqualTo(other))
}

// ShouldNotBeLessThan asserts that the value should not be less than other.
func (a *Assertion[T]) ShouldNotBeLessThan(other T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(BeLessThan(other))
}

// ShouldNotBeLessThanEqualTo asserts that the value should not be less than or equal to other.
func (a *Assertion[T]) ShouldNotBeLessThanEqualTo(other T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(BeLessThanEqualTo(other))
}

// ShouldBeInInclusiveRange asserts that the value should be in inclusive range [low, high].
func (a *Assertion[T]) ShouldBeInInclusiveRange(low, high T) *Assertion[T] {
	a.t.Helper()
	return a.should(BeInInclusiveRange(low, high))
}

// ShouldNotBeInInclusiveRange asserts that the value should not be in inclusive range [low, high].
func (a *Assertion[T]) ShouldNotBeInInclusiveRange(low, high T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(BeInInclusiveRange(low, high))
}

// ShouldBeInExclusiveRange asserts that the value should be in exclusive range [low, high).
func (a *Assertion[T]) ShouldBeInExclusiveRange(low, high T) *Assertion[T] {
	a.t.Helper()
	return a.should(BeInExclusiveRange(low, high))
}

// ShouldNotBeInExclusiveRange asserts that the value should not be in exclusive range [low, high).
func (a *Assertion[T]) ShouldNotBeInExclusiveRange(low, high T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(BeInExclusiveRange(low, high))
}
