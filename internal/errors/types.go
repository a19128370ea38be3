package errors

import (
	"fmt"
	"runtime"
)

// ErrorCode defines error code type
type ErrorCode string

const (
	// Selection outcomes
	ErrEmptyList    ErrorCode = "EMPTY_LIST"
	ErrNotATerminal ErrorCode = "NOT_A_TERMINAL"
	ErrUserCancel   ErrorCode = "CANCELED"
	ErrIOFailure    ErrorCode = "IO_FAILURE"

	// Configuration related errors
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigSave       ErrorCode = "CONFIG_SAVE"
	ErrConfigValidation ErrorCode = "CONFIG_VALIDATION"
)

// PickerError represents a structured error for the picker
type PickerError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
	Stack   string                 `json:"stack,omitempty"`
}

// Error implements error interface
func (e *PickerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports Go 1.13+ error wrapping
func (e *PickerError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a PickerError with the same code, so the
// package-level sentinels work with errors.Is.
func (e *PickerError) Is(target error) bool {
	t, ok := target.(*PickerError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithContext adds context information
func (e *PickerError) WithContext(key string, value interface{}) *PickerError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new picker error
func NewError(code ErrorCode, message string) *PickerError {
	return &PickerError{
		Code:    code,
		Message: message,
		Context: make(map[string]interface{}),
		Stack:   captureStack(),
	}
}

// WrapError wraps existing error
func WrapError(err error, code ErrorCode, message string) *PickerError {
	if err == nil {
		return nil
	}

	return &PickerError{
		Code:    code,
		Message: message,
		Cause:   err,
		Context: make(map[string]interface{}),
		Stack:   captureStack(),
	}
}

// captureStack captures current stack information
func captureStack() string {
	// Skip current function and the function that called it
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// GetPickerError finds the first PickerError in err's chain
func GetPickerError(err error) (*PickerError, bool) {
	for err != nil {
		if pe, ok := err.(*PickerError); ok {
			return pe, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}

// HasCode checks if error has specific code
func HasCode(err error, code ErrorCode) bool {
	if pe, ok := GetPickerError(err); ok {
		return pe.Code == code
	}
	return false
}
