package num

import (
	"math"

	"golang.org/x/exp/constraints"

	"digital.vasic.matchers/pkg/matcher"
)

func float[T constraints.Float](
	predicate func(float64) bool, what string,
) matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Result {
		return matcher.Formatted(
			predicate(float64(value)),
			"%v should be %s",
			"%v should not be %s",
			value, what,
		)
	})
}

func BeNaN[T constraints.Float]() matcher.Matcher[T] {
	return float[T](math.IsNaN, "NaN")
}

func BeInfinite[T constraints.Float]() matcher.Matcher[T] {
	return float[T](func(v float64) bool { return math.IsInf(v, 0) }, "infinite")
}

func BeFinite[T constraints.Float]() matcher.Matcher[T] {
	return float[T](func(v float64) bool {
		return !math.IsInf(v, 0) && !math.IsNaN(v)
	}, "finite")
}

// BeWithinTolerance matches values v with |v - expected| <= tolerance.
// NaN is never within tolerance of anything.
func BeWithinTolerance[T constraints.Float](expected, tolerance T) matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Result {
		diff := math.Abs(float64(value) - float64(expected))
		return matcher.Formatted(
			diff <= math.Abs(float64(tolerance)),
			"%v should be within %v of %v",
			"%v should not be within %v of %v",
			value, tolerance, expected,
		)
	})
}
