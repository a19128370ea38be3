package errors

import "fmt"

// Selection error factory functions

// ErrEmptyItemList no items were supplied to a selector
func ErrEmptyItemList() *PickerError {
	return NewError(ErrEmptyList, "No items to select from")
}

// ErrNotInteractive the input source is not a terminal
func ErrNotInteractive() *PickerError {
	return NewError(ErrNotATerminal, "Input is not an interactive terminal")
}

// ErrUserCancelled user cancelled the selection
func ErrUserCancelled() *PickerError {
	return NewError(ErrUserCancel, "Canceled")
}

// ErrTerminalIO terminal read or write failed
func ErrTerminalIO(operation string, cause error) *PickerError {
	return WrapError(cause, ErrIOFailure, fmt.Sprintf("Terminal %s failed", operation)).
		WithContext("operation", operation)
}

// Configuration related error factory functions

// ErrConfigLoadFailed configuration loading failed
func ErrConfigLoadFailed(path string, cause error) *PickerError {
	return WrapError(cause, ErrConfigLoad, "Configuration file loading failed").
		WithContext("config_path", path)
}

// ErrConfigSaveFailed configuration saving failed
func ErrConfigSaveFailed(path string, cause error) *PickerError {
	return WrapError(cause, ErrConfigSave, "Configuration file saving failed").
		WithContext("config_path", path)
}

// ErrConfigValidationFailed configuration validation failed
func ErrConfigValidationFailed(field string, reason string) *PickerError {
	return NewError(ErrConfigValidation, fmt.Sprintf("Configuration validation failed: %s", reason)).
		WithContext("field", field).
		WithContext("reason", reason)
}

// IsCanceled reports whether err is a user cancellation
func IsCanceled(err error) bool {
	return HasCode(err, ErrUserCancel)
}
