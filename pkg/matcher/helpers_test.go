package matcher

func isEven() Matcher[int] {
	return Func[int](func(v int) Result {
		return Formatted(
			v%2 == 0,
			"%d should be even",
			"%d should not be even",
			v,
		)
	})
}

func isPositive() Matcher[int] {
	return Func[int](func(v int) Result {
		return Formatted(
			v > 0,
			"%d should be positive",
			"%d should not be positive",
			v,
		)
	})
}
