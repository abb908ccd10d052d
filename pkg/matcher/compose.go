package matcher

import (
	"fmt"
	"strings"
)

// Group is a composite matcher whose children can be added after
// construction.
type Group[T any] interface {
	Matcher[T]

	Add(m Matcher[T])
}

// AllOf is a logical AND over its children. An empty AllOf passes
// for every value.
type AllOf[T any] struct {
	Matchers []*Boxed[T]
}

// All returns an AND composite over ms.
func All[T any](ms ...Matcher[T]) *AllOf[T] {
	a := &AllOf[T]{}
	for _, m := range ms {
		a.Add(m)
	}
	return a
}

// Add appends a child matcher.
func (a *AllOf[T]) Add(m Matcher[T]) {
	a.Matchers = append(a.Matchers, Box(m))
}

func (a *AllOf[T]) String() string {
	return group("all", a.Matchers)
}

// Test passes iff every child passes. The failure message lists
// every failing child.
func (a *AllOf[T]) Test(value T) Result {
	if len(a.Matchers) == 0 {
		return Formatted(
			true,
			"%v should satisfy all of 0 matchers",
			"%v should not satisfy all of 0 matchers",
			value,
		)
	}

	var failures, negated []string
	for _, m := range a.Matchers {
		r := m.Test(value)
		if r.Passed() {
			negated = append(negated, r.NegatedFailureMessage())
			continue
		}
		failures = append(failures, r.FailureMessage())
	}

	return NewResult(
		len(failures) == 0,
		fmt.Sprintf(
			"%d of %d matchers failed: %s",
			len(failures), len(a.Matchers),
			strings.Join(failures, "; "),
		),
		fmt.Sprintf(
			"all %d matchers passed: %s",
			len(a.Matchers), strings.Join(negated, "; "),
		),
	)
}

// AnyOf is a logical OR over its children. An empty AnyOf fails
// for every value.
type AnyOf[T any] struct {
	Matchers []*Boxed[T]
}

// Any returns an OR composite over ms.
func Any[T any](ms ...Matcher[T]) *AnyOf[T] {
	o := &AnyOf[T]{}
	for _, m := range ms {
		o.Add(m)
	}
	return o
}

// Add appends a child matcher.
func (o *AnyOf[T]) Add(m Matcher[T]) {
	o.Matchers = append(o.Matchers, Box(m))
}

func (o *AnyOf[T]) String() string {
	return group("any", o.Matchers)
}

// Test passes iff at least one child passes. The negated failure
// message names the first child that passed.
func (o *AnyOf[T]) Test(value T) Result {
	if len(o.Matchers) == 0 {
		return Formatted(
			false,
			"%v should satisfy at least one of 0 matchers",
			"%v should not satisfy any of 0 matchers",
			value,
		)
	}

	failures := make([]string, 0, len(o.Matchers))
	for _, m := range o.Matchers {
		r := m.Test(value)
		if r.Passed() {
			return NewResult(
				true,
				r.FailureMessage(),
				r.NegatedFailureMessage(),
			)
		}
		failures = append(failures, r.FailureMessage())
	}

	return NewResult(
		false,
		fmt.Sprintf(
			"none of %d matchers passed: %s",
			len(o.Matchers), strings.Join(failures, "; "),
		),
		fmt.Sprintf(
			"%v should not satisfy any of %d matchers",
			value, len(o.Matchers),
		),
	)
}

// NotOf inverts its child.
type NotOf[T any] struct {
	Matcher *Boxed[T]
}

// Not returns a matcher that passes iff m does not. Its messages
// are m's messages swapped.
func Not[T any](m Matcher[T]) *NotOf[T] {
	return &NotOf[T]{Matcher: Box(m)}
}

func (n *NotOf[T]) String() string {
	return fmt.Sprintf("(not %s)", n.Matcher)
}

// Test inverts the child's result.
func (n *NotOf[T]) Test(value T) Result {
	return n.Matcher.Test(value).Negate()
}

func group[T any](op string, ms []*Boxed[T]) string {
	var b strings.Builder
	b.WriteString("(" + op)
	for _, m := range ms {
		b.WriteString(" " + m.String())
	}
	b.WriteString(")")
	return b.String()
}
