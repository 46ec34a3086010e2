// Package modelerr defines the error kinds raised by the geometry, type and
// memory models. Constructors wrap these sentinels so callers can match them
// with errors.Is.
package modelerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports malformed constructor input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConstruction reports a factory whose delegate constructor failed.
	ErrConstruction = errors.New("construction failed")
	// ErrDomain reports an index outside the bounds of its governing dim.
	ErrDomain = errors.New("out of domain")
	// ErrUnknownVariant reports an unrecognized kind during dispatch.
	ErrUnknownVariant = errors.New("unknown variant")
)

// InvalidArgument returns an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Domain returns an error wrapping ErrDomain.
func Domain(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
}

// UnknownVariant returns an error wrapping ErrUnknownVariant.
func UnknownVariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnknownVariant, fmt.Sprintf(format, args...))
}

// Construction wraps cause as a construction failure of what. The result
// matches both ErrConstruction and cause.
func Construction(what string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrConstruction, what, cause)
}
