package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent failures at the service factory boundary.
var (
	// ErrInvalidInput indicates a missing or malformed argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown service for the requested version.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrTypeMismatch indicates a value is not of the kind a factory expects.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrAuthenticationFailed indicates the login call failed or credentials were rejected.
	ErrAuthenticationFailed = errors.New("failed to authenticate user")

	// ErrRemoteCall indicates a downstream service call failed.
	ErrRemoteCall = errors.New("remote call failed")
)

// TypeMismatchError reports a value that is not of the expected kind.
type TypeMismatchError struct {
	// Expected names the kind the caller had to supply.
	Expected string
	// Actual names the kind that was supplied.
	Actual string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Is reports ErrTypeMismatch so callers can match with errors.Is.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// AuthenticationError wraps the cause of a failed login.
type AuthenticationError struct {
	Cause error
}

func (e *AuthenticationError) Error() string {
	if e.Cause == nil {
		return ErrAuthenticationFailed.Error()
	}
	return fmt.Sprintf("%s: %v", ErrAuthenticationFailed, e.Cause)
}

// Unwrap exposes both the sentinel and the original cause.
func (e *AuthenticationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrAuthenticationFailed}
	}
	return []error{ErrAuthenticationFailed, e.Cause}
}
