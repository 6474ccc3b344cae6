package errors

import (
	"errors"
	"fmt"
)

// Common error types for the console client
var (
	// Session errors
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoRefreshToken  = errors.New("no refresh token")
	ErrRefreshFailed   = errors.New("refresh failed")
	ErrNoAccessToken   = errors.New("no access token")
	ErrNoActiveTenant  = errors.New("no active tenant")
	ErrInvalidResponse = errors.New("invalid response")

	// Storage errors
	ErrCorruptRecord = errors.New("corrupt record")
	ErrSealed        = errors.New("unable to open sealed store")

	// General errors
	ErrInvalidRequest = errors.New("invalid request")
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

// New returns an error that formats as the given text
func New(text string) error {
	return errors.New(text)
}
