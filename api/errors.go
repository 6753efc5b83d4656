// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the ringio library.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrInvalidCapacity     = fmt.Errorf("capacity must be positive")
	ErrInvalidElementCount = fmt.Errorf("element count must be positive")
	ErrOverwriteRejected   = fmt.Errorf("write rejected: would overwrite pending data")
	ErrIndexOutOfBounds    = fmt.Errorf("index outside pending range")
	ErrWrite               = fmt.Errorf("element write not accepted")
	ErrRead                = fmt.Errorf("no pending element")
	ErrRingClosed          = fmt.Errorf("ring is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeInvalidElementCount
	ErrCodeOverwriteRejected
	ErrCodeIndexOutOfBounds
	ErrCodeWrite
	ErrCodeRead
	ErrCodeClosed
)

// sentinel maps a code to its package-level error value.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidCapacity:
		return ErrInvalidCapacity
	case ErrCodeInvalidElementCount:
		return ErrInvalidElementCount
	case ErrCodeOverwriteRejected:
		return ErrOverwriteRejected
	case ErrCodeIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case ErrCodeWrite:
		return ErrWrite
	case ErrCodeRead:
		return ErrRead
	case ErrCodeClosed:
		return ErrRingClosed
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel for errors.Is matching.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// DiscardedBytes extracts the discarded-byte count carried by an
// ErrOverwriteRejected error. ok is false for unrelated errors.
func DiscardedBytes(err error) (n int, ok bool) {
	var e *Error
	if !errors.As(err, &e) || e.Code != ErrCodeOverwriteRejected {
		return 0, false
	}
	n, ok = e.Context["discarded"].(int)
	return n, ok
}
