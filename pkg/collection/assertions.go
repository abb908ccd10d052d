package collection

import (
	"cmp"

	"digital.vasic.matchers/pkg/matcher"
)

// Assertion chains membership and size assertions on a slice.
type Assertion[T comparable] struct {
	t          matcher.TestingT
	collection []T
}

// That starts a chain of assertions on collection.
func That[T comparable](t matcher.TestingT, collection []T) *Assertion[T] {
	return &Assertion[T]{t: t, collection: collection}
}

func (a *Assertion[T]) should(m matcher.Matcher[[]T]) *Assertion[T] {
	a.t.Helper()
	matcher.Should(a.t, a.collection, m)
	return a
}

func (a *Assertion[T]) shouldNot(m matcher.Matcher[[]T]) *Assertion[T] {
	a.t.Helper()
	matcher.ShouldNot(a.t, a.collection, m)
	return a
}

// Should asserts an arbitrary matcher.
func (a *Assertion[T]) Should(m matcher.Matcher[[]T]) *Assertion[T] {
	a.t.Helper()
	return a.should(m)
}

// ShouldNot asserts that an arbitrary matcher does not pass.
func (a *Assertion[T]) ShouldNot(m matcher.Matcher[[]T]) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(m)
}

// ShouldContain asserts that the collection should contain element.
func (a *Assertion[T]) ShouldContain(element T) *Assertion[T] {
	a.t.Helper()
	return a.should(Contain(element))
}

// ShouldNotContain asserts that the collection should not contain element.
func (a *Assertion[T]) ShouldNotContain(element T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(Contain(element))
}

// ShouldContainAll asserts that the collection should contain every one of elements.
func (a *Assertion[T]) ShouldContainAll(elements ...T) *Assertion[T] {
	a.t.Helper()
	return a.should(ContainAll(elements...))
}

// ShouldNotContainAll asserts that the collection should not contain every one of elements.
func (a *Assertion[T]) ShouldNotContainAll(elements ...T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(ContainAll(elements...))
}

// ShouldContainAny asserts that the collection should contain at least one of elements.
func (a *Assertion[T]) ShouldContainAny(elements ...T) *Assertion[T] {
	a.t.Helper()
	return a.should(ContainAny(elements...))
}

// ShouldNotContainAny asserts that the collection should not contain at least one of elements.
func (a *Assertion[T]) ShouldNotContainAny(elements ...T) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(ContainAny(elements...))
}

// ShouldBeEmpty asserts that the collection should be empty.
func (a *Assertion[T]) ShouldBeEmpty() *Assertion[T] {
	a.t.Helper()
	return a.should(BeEmpty[T]())
}

// ShouldNotBeEmpty asserts that the collection should not be empty.
func (a *Assertion[T]) ShouldNotBeEmpty() *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(BeEmpty[T]())
}

// ShouldHaveDuplicates asserts that the collection should have duplicates.
func (a *Assertion[T]) ShouldHaveDuplicates() *Assertion[T] {
	a.t.Helper()
	return a.should(HaveDuplicates[T]())
}

// ShouldNotHaveDuplicates asserts that the collection should not have duplicates.
func (a *Assertion[T]) ShouldNotHaveDuplicates() *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(HaveDuplicates[T]())
}

// ShouldHaveSize asserts that the collection should have exactly size elements.
func (a *Assertion[T]) ShouldHaveSize(size int) *Assertion[T] {
	a.t.Helper()
	return a.should(HaveSize[T](size))
}

// ShouldNotHaveSize asserts that the collection should not have exactly size elements.
func (a *Assertion[T]) ShouldNotHaveSize(size int) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(HaveSize[T](size))
}

// ShouldHaveAtLeastSize asserts that the collection should have at least size elements.
func (a *Assertion[T]) ShouldHaveAtLeastSize(size int) *Assertion[T] {
	a.t.Helper()
	return a.should(HaveAtLeastSize[T](size))
}

// ShouldHaveAtMostSize asserts that the collection should have at most size elements.
func (a *Assertion[T]) ShouldHaveAtMostSize(size int) *Assertion[T] {
	a.t.Helper()
	return a.should(HaveAtMostSize[T](size))
}

// ShouldHaveSizeInInclusiveRange asserts that the collection should have size in inclusive range [low, high].
func (a *Assertion[T]) ShouldHaveSizeInInclusiveRange(low, high int) *Assertion[T] {
	a.t.Helper()
	return a.should(HaveSizeInInclusiveRange[T](low, high))
}

// ShouldNotHaveSizeInInclusiveRange asserts that the collection should not have size in inclusive range [low, high].
func (a *Assertion[T]) ShouldNotHaveSizeInInclusiveRange(low, high int) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(HaveSizeInInclusiveRange[T](low, high))
}

// ShouldHaveSizeInExclusiveRange asserts that the collection should have size in exclusive range [low, high).
func (a *Assertion[T]) ShouldHaveSizeInExclusiveRange(low, high int) *Assertion[T] {
	a.t.Helper()
	return a.should(HaveSizeInExclusiveRange[T](low, high))
}

// ShouldNotHaveSizeInExclusiveRange asserts that the collection should not have size in exclusive range [low, high).
func (a *Assertion[T]) ShouldNotHaveSizeInExclusiveRange(low, high int) *Assertion[T] {
	a.t.Helper()
	return a.shouldNot(HaveSizeInExclusiveRange[T](low, high))
}

// ShouldBeSameSizeAs asserts len(collection) == len(other). Use
// BeSameSizeAs directly when other has a different element type.
func (a *Assertion[T]) ShouldBeSameSizeAs(other []T) *Assertion[T] {
	a.t.Helper()
	return a.should(BeSameSizeAs[T](other))
}

// OrderedAssertion adds bound and ordering assertions to
// Assertion.
type OrderedAssertion[T cmp.Ordered] struct {
	*Assertion[T]
}

// ThatOrdered starts a chain of assertions on a slice of ordered
// elements.
func ThatOrdered[T cmp.Ordered](t matcher.TestingT, collection []T) *OrderedAssertion[T] {
	return &OrderedAssertion[T]{Assertion: That(t, collection)}
}

// ShouldHaveUpperBound asserts that the collection should have no element greater than bound.
func (a *OrderedAssertion[T]) ShouldHaveUpperBound(bound T) *OrderedAssertion[T] {
	a.t.Helper()
	a.should(HaveUpperBound(bound))
	return a
}

// ShouldHaveLowerBound asserts that the collection should have no element less than bound.
func (a *OrderedAssertion[T]) ShouldHaveLowerBound(bound T) *OrderedAssertion[T] {
	a.t.Helper()
	a.should(HaveLowerBound(bound))
	return a
}

// ShouldBeSortedAscending asserts that the collection should be sorted ascending.
func (a *OrderedAssertion[T]) ShouldBeSortedAscending() *OrderedAssertion[T] {
	a.t.Helper()
	a.should(BeSortedAscending[T]())
	return a
}

// ShouldBeSortedDescending asserts that the collection should be sorted descending.
func (a *OrderedAssertion[T]) ShouldBeSortedDescending() *OrderedAssertion[T] {
	a.t.Helper()
	a.should(BeSortedDescending[T]())
	return a
}
