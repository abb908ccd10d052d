// Package equal provides equality and error matchers. Deep
// equality is delegated to github.com/google/go-cmp, whose diff is
// embedded in the failure message.
package equal

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.matchers/pkg/matcher"
)

// Equal matches values deeply equal to expected under opts.
func Equal[T any](expected T, opts ...cmp.Option) matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Result {
		diff := cmp.Diff(expected, value, opts...)
		failure := fmt.Sprintf("%v should equal %v", value, expected)
		if diff != "" {
			failure += fmt.Sprintf(" (-expected +actual):\n%s", diff)
		}
		return matcher.NewResult(
			diff == "",
			failure,
			fmt.Sprintf("%v should not equal %v", value, expected),
		)
	})
}

// BeZero matches the zero value of T.
func BeZero[T comparable]() matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Result {
		var zero T
		return matcher.Formatted(
			value == zero,
			"%v should be the zero value",
			"%v should not be the zero value",
			value,
		)
	})
}

// BeNil matches nil interfaces and nil pointers, maps, slices,
// channels and functions.
func BeNil[T any]() matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Result {
		return matcher.Formatted(
			isNil(value),
			"%v should be nil",
			"%v should not be nil",
			value,
		)
	})
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// MatchError matches errors for which errors.Is(err, target) holds.
func MatchError(target error) matcher.Matcher[error] {
	return matcher.Func[error](func(err error) matcher.Result {
		return matcher.Formatted(
			errors.Is(err, target),
			"%v should match error %v",
			"%v should not match error %v",
			err, target,
		)
	})
}

// HaveErrorContaining matches non-nil errors whose message contains
// substr.
func HaveErrorContaining(substr string) matcher.Matcher[error] {
	return matcher.Func[error](func(err error) matcher.Result {
		return matcher.Formatted(
			err != nil && strings.Contains(err.Error(), substr),
			"%v should contain %q",
			"%v should not contain %q",
			err, substr,
		)
	})
}
