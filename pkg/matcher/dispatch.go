package matcher

// TestingT is the subset of *testing.T used by Should and
// ShouldNot.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Should asserts that m passes for value. On failure it calls
// t.Fatalf with the matcher's failure message, which terminates
// the test when t is a *testing.T. The return value is only
// observable with a TestingT that does not stop the goroutine.
func Should[T any](t TestingT, value T, m Matcher[T]) bool {
	t.Helper()
	return dispatch(t, value, m, Positive)
}

// ShouldNot asserts that m does not pass for value. On failure it
// calls t.Fatalf with the matcher's negated failure message.
func ShouldNot[T any](t TestingT, value T, m Matcher[T]) bool {
	t.Helper()
	return dispatch(t, value, m, Negative)
}

func dispatch[T any](
	t TestingT, value T, m Matcher[T], p Polarity,
) bool {
	t.Helper()
	if err := Check(value, m, p); err != nil {
		t.Fatalf("%s", err)
		return false
	}
	return true
}

// Check runs m against value and returns an *AssertionError when
// the assertion of polarity p does not hold.
func Check[T any](value T, m Matcher[T], p Polarity) error {
	r := m.Test(value)
	if r.Holds(p) {
		return nil
	}
	return &AssertionError{Polarity: p, Message: r.Message(p)}
}

// Subject binds a value to a TestingT so several assertions can be
// chained on it.
type Subject[T any] struct {
	t     TestingT
	value T
}

// Expect starts a chain of assertions on value.
func Expect[T any](t TestingT, value T) *Subject[T] {
	return &Subject[T]{t: t, value: value}
}

// Value returns the value under test.
func (s *Subject[T]) Value() T { return s.value }

// Should asserts that m passes.
func (s *Subject[T]) Should(m Matcher[T]) *Subject[T] {
	s.t.Helper()
	Should(s.t, s.value, m)
	return s
}

// ShouldNot asserts that m does not pass.
func (s *Subject[T]) ShouldNot(m Matcher[T]) *Subject[T] {
	s.t.Helper()
	ShouldNot(s.t, s.value, m)
	return s
}
