package errors

import (
	"errors"
	"fmt"
)

// Common error types for the storefront client
var (
	// Session errors
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidSession = errors.New("invalid session data")

	// Request errors
	ErrInvalidRequest = errors.New("invalid request")

	// Cart errors
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidServiceID = errors.New("service id is required")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidKey         = errors.New("invalid encryption key")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
