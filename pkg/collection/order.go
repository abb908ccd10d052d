package collection

import (
	"cmp"
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// BeSortedAscending matches slices in non-decreasing order. Empty
// and single-element slices are sorted.
func BeSortedAscending[T cmp.Ordered]() matcher.Matcher[[]T] {
	return sorted[T]("ascending", 1)
}

// BeSortedDescending matches slices in non-increasing order.
func BeSortedDescending[T cmp.Ordered]() matcher.Matcher[[]T] {
	return sorted[T]("descending", -1)
}

func sorted[T cmp.Ordered](order string, direction int) matcher.Matcher[[]T] {
	return matcher.Func[[]T](func(collection []T) matcher.Result {
		for i := 1; i < len(collection); i++ {
			if cmp.Compare(collection[i-1], collection[i])*direction > 0 {
				return matcher.NewResult(
					false,
					fmt.Sprintf(
						"%v should be sorted %s but %v came before %v",
						collection, order, collection[i-1], collection[i],
					),
					fmt.Sprintf("%v should not be sorted %s", collection, order),
				)
			}
		}
		return matcher.Formatted(
			true,
			"%v should be sorted %s",
			"%v should not be sorted %s",
			collection, order,
		)
	})
}
