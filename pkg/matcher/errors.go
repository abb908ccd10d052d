package matcher

import (
	"errors"
	"fmt"
)

// AssertionError is the only failure kind raised by dispatch. It
// carries the message selected for the polarity that failed.
type AssertionError struct {
	Polarity Polarity
	Message  string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s", e.Message)
}

// IsAssertionError reports whether err wraps an *AssertionError.
func IsAssertionError(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

// Panicking returns a TestingT that panics with *AssertionError
// instead of failing a test. It allows matchers to guard code that
// runs outside the testing package.
func Panicking() TestingT {
	return panickingT{}
}

type panickingT struct{}

func (panickingT) Helper() {}

func (panickingT) Fatalf(format string, args ...any) {
	if len(args) == 1 {
		if ae, ok := args[0].(*AssertionError); ok {
			panic(ae)
		}
	}
	panic(&AssertionError{Message: fmt.Sprintf(format, args...)})
}
