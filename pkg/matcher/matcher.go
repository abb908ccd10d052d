package matcher

import "fmt"

// Matcher is implemented by every concrete check. Test must be
// pure: calling it any number of times with the same value yields
// the same Result, and it never panics or returns an error. A
// mismatch is reported as a Result that did not pass.
type Matcher[T any] interface {
	Test(value T) Result
}

// Func adapts an ordinary function into a Matcher.
type Func[T any] func(value T) Result

// Test calls f(value).
func (f Func[T]) Test(value T) Result { return f(value) }

// Boxed is an owning handle around any Matcher[T]. It lets
// matchers of different concrete types live in one slice or cross
// API boundaries that only know the value type.
type Boxed[T any] struct {
	inner Matcher[T]
	name  string
}

// Box wraps m. Boxing an already boxed matcher returns it as is.
func Box[T any](m Matcher[T]) *Boxed[T] {
	if b, ok := m.(*Boxed[T]); ok {
		return b
	}
	return &Boxed[T]{inner: m}
}

// Named wraps m and gives it a description used by String.
func Named[T any](name string, m Matcher[T]) *Boxed[T] {
	return &Boxed[T]{inner: m, name: name}
}

// Test delegates to the wrapped matcher.
func (b *Boxed[T]) Test(value T) Result {
	return b.inner.Test(value)
}

// Unwrap returns the wrapped matcher.
func (b *Boxed[T]) Unwrap() Matcher[T] { return b.inner }

func (b *Boxed[T]) String() string {
	if b.name != "" {
		return b.name
	}
	return describe(b.inner)
}

// Map adapts a Matcher[U] to values of type T by transforming each
// value with f before testing it.
func Map[T, U any](f func(T) U, m Matcher[U]) Matcher[T] {
	return Func[T](func(value T) Result {
		return m.Test(f(value))
	})
}

// Always returns a matcher that passes for every value.
func Always[T any]() Matcher[T] {
	return Func[T](func(value T) Result {
		return Formatted(
			true,
			"%v should match anything",
			"%v should not match anything",
			value,
		)
	})
}

// Never returns a matcher that fails for every value.
func Never[T any]() Matcher[T] {
	return Func[T](func(value T) Result {
		return Formatted(
			false,
			"%v should match nothing",
			"%v should not match nothing",
			value,
		)
	})
}

func describe(m any) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", m)
}
