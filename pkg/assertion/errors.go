package assertion

import "errors"

var (
	// ErrUnknownType is returned when no factory is registered
	// for a definition's type.
	ErrUnknownType = errors.New("unknown assertion type")

	// ErrMissingType is returned for definitions without a type
	// and without composite children.
	ErrMissingType = errors.New("assertion type is required")

	// ErrAlreadyRegistered is returned by Register for a type
	// that already has a factory.
	ErrAlreadyRegistered = errors.New("assertion type already registered")

	// ErrInvalidDefinition wraps factory errors caused by bad
	// values or params.
	ErrInvalidDefinition = errors.New("invalid assertion")

	// ErrTargetNotFound is reported when a target is absent from
	// the evaluated values.
	ErrTargetNotFound = errors.New("target not found")
)
