// Package num provides matchers for integer and floating point
// values.
package num

import (
	"golang.org/x/exp/constraints"

	"digital.vasic.matchers/pkg/matcher"
)

func integer[T constraints.Integer](
	predicate func(T) bool, what string,
) matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Result {
		return matcher.Formatted(
			predicate(value),
			"%v should be %s",
			"%v should not be %s",
			value, what,
		)
	})
}

func BePositive[T constraints.Integer]() matcher.Matcher[T] {
	return integer(func(v T) bool { return v > 0 }, "positive")
}

func BeNegative[T constraints.Integer]() matcher.Matcher[T] {
	return integer(func(v T) bool { return v < 0 }, "negative")
}

func BeZero[T constraints.Integer]() matcher.Matcher[T] {
	return integer(func(v T) bool { return v == 0 }, "zero")
}

func BeEven[T constraints.Integer]() matcher.Matcher[T] {
	return integer(func(v T) bool { return v%2 == 0 }, "even")
}

func BeOdd[T constraints.Integer]() matcher.Matcher[T] {
	return integer(func(v T) bool { return v%2 != 0 }, "odd")
}
