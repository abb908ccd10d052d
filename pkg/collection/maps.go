package collection

import "digital.vasic.matchers/pkg/matcher"

// ContainKey matches maps that hold key.
func ContainKey[K comparable, V any](key K) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(m map[K]V) matcher.Result {
		_, ok := m[key]
		return matcher.Formatted(
			ok,
			"%v should contain key %v",
			"%v should not contain key %v",
			m, key,
		)
	})
}

// ContainValue matches maps that hold value under any key.
func ContainValue[K, V comparable](value V) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(m map[K]V) matcher.Result {
		found := false
		for _, v := range m {
			if v == value {
				found = true
				break
			}
		}
		return matcher.Formatted(
			found,
			"%v should contain value %v",
			"%v should not contain value %v",
			m, value,
		)
	})
}

// ContainEntry matches maps that hold value under key.
func ContainEntry[K, V comparable](key K, value V) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(m map[K]V) matcher.Result {
		v, ok := m[key]
		return matcher.Formatted(
			ok && v == value,
			"%v should contain entry %v: %v",
			"%v should not contain entry %v: %v",
			m, key, value,
		)
	})
}

// HaveMapSize matches maps with exactly size entries.
func HaveMapSize[K comparable, V any](size int) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(m map[K]V) matcher.Result {
		return matcher.Formatted(
			len(m) == size,
			"%v should have size %d but was %d",
			"%v should not have size %d but was %d",
			m, size, len(m),
		)
	})
}
