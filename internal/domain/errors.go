package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
