package contracts

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every pipeline failure wraps exactly one of these;
// callers branch with errors.Is. A zero denominator is not an error, it
// resolves to the Ratio null sentinel.
var (
	// ErrNetwork marks an unreachable feed or a non-2xx response
	ErrNetwork = errors.New("network failure")

	// ErrValidation marks a malformed or incomplete fetched table
	ErrValidation = errors.New("data validation")
)

// NetworkError wraps err as a network failure of the named adapter
func NetworkError(adapter string, err error) error {
	return fmt.Errorf("%s: %w: %w", adapter, ErrNetwork, err)
}

// ValidationError wraps err as a validation failure in the named stage
func ValidationError(stage string, err error) error {
	return fmt.Errorf("%s: %w: %w", stage, ErrValidation, err)
}

// ValidationErrorf builds a validation failure from a format string
func ValidationErrorf(stage, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", stage, ErrValidation, fmt.Sprintf(format, args...))
}
