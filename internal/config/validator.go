package config

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/TonnyWong1052/picker/internal/errors"
	"github.com/TonnyWong1052/picker/internal/selector"
)

// ValidationError represents a configuration validation error with user guidance
type ValidationError struct {
	Field       string   `json:"field"`
	Value       string   `json:"value,omitempty"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e ValidationError) Error() string {
	var result string
	if e.Value != "" {
		result = fmt.Sprintf("config field '%s' value '%s' is invalid: %s", e.Field, e.Value, e.Message)
	} else {
		result = fmt.Sprintf("config field '%s' is invalid: %s", e.Field, e.Message)
	}
	if len(e.Suggestions) > 0 {
		result += " (valid: " + strings.Join(e.Suggestions, ", ") + ")"
	}
	return result
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("found %d configuration errors:\n- %s", len(e), strings.Join(messages, "\n- "))
}

// Validator collects validation errors
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{errors: make([]ValidationError, 0)}
}

// AddError adds a validation error
func (v *Validator) AddError(field, value, message string) {
	v.AddErrorWithSuggestions(field, value, message, nil)
}

// AddErrorWithSuggestions adds a validation error listing acceptable values
func (v *Validator) AddErrorWithSuggestions(field, value, message string, suggestions []string) {
	v.errors = append(v.errors, ValidationError{
		Field:       field,
		Value:       value,
		Message:     message,
		Suggestions: suggestions,
	})
}

// HasErrors checks if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// GetErrors gets the validation error list
func (v *Validator) GetErrors() ValidationErrors {
	return ValidationErrors(v.errors)
}

// Validate checks every key binding, the display section and the logging
// section. All problems are reported together.
func (c *Config) Validate() error {
	v := NewValidator()

	v.validateKeys("single_keys", c.SingleKeys, SingleActionNames(), func(name string) error {
		_, err := selector.ParseSingleKind(name)
		return err
	})
	v.validateKeys("multi_keys", c.MultiKeys, MultiActionNames(), func(name string) error {
		_, err := selector.ParseMultiKind(name)
		return err
	})
	v.validateDisplay("display", c.Display)
	v.validateLogging("logging", c.Logging)

	if v.HasErrors() {
		return apperrors.WrapError(v.GetErrors(), apperrors.ErrConfigValidation, "configuration validation failed")
	}
	return nil
}

func (v *Validator) validateKeys(section string, bindings map[string]string, valid []string, parse func(string) error) {
	names := make([]string, 0, len(bindings))
	for k := range bindings {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		field := section + "." + k
		if _, err := selector.ParseKey(k); err != nil {
			v.AddError(field, k, err.Error())
			continue
		}
		action := bindings[k]
		if action == ActionNone {
			continue
		}
		if err := parse(action); err != nil {
			v.AddErrorWithSuggestions(field, action, "unknown action", append(valid, ActionNone))
		}
	}
}

func (v *Validator) validateDisplay(prefix string, d DisplayConfig) {
	if d.CursorMarker == "" {
		v.AddError(prefix+".cursor_marker", "", "cursor marker cannot be empty")
	}
	if strings.ContainsAny(d.CursorMarker, "\r\n") {
		v.AddError(prefix+".cursor_marker", d.CursorMarker, "cursor marker must be a single line")
	}
	if len([]rune(d.CursorMarker)) > MaxCursorMarkerLen {
		v.AddError(prefix+".cursor_marker", d.CursorMarker, fmt.Sprintf("cursor marker is longer than %d characters", MaxCursorMarkerLen))
	}
}

func (v *Validator) validateLogging(prefix string, l LoggingConfig) {
	if l.Level != "" && !IsValidLogLevel(l.Level) {
		v.AddErrorWithSuggestions(prefix+".level", l.Level, "invalid log level", GetValidLogLevels())
	}
	if l.Format != "" && !contains(GetValidLogFormats(), l.Format) {
		v.AddErrorWithSuggestions(prefix+".format", l.Format, "invalid log format", GetValidLogFormats())
	}
	if l.Output != "" && !contains(GetValidLogOutputs(), l.Output) {
		v.AddErrorWithSuggestions(prefix+".output", l.Output, "invalid log output", GetValidLogOutputs())
	}
	if (l.Output == LogOutputFile || l.Output == LogOutputBoth) && l.LogFile == "" {
		v.AddError(prefix+".log_file", "", "log file path cannot be empty when logging to a file")
	}
}

// ValidateAndFix fills in empty fields with their defaults and returns a
// description of each change.
func (c *Config) ValidateAndFix() []string {
	var fixes []string

	if c.Display.CursorMarker == "" {
		c.Display.CursorMarker = DefaultCursorMarker
		fixes = append(fixes, "set cursor marker to "+DefaultCursorMarker)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
		fixes = append(fixes, "set log level to "+LogLevelInfo)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = LogFormatText
		fixes = append(fixes, "set log format to "+LogFormatText)
	}
	if c.Logging.Output == "" {
		c.Logging.Output = LogOutputFile
		fixes = append(fixes, "set log output to "+LogOutputFile)
	}
	if c.Logging.LogFile == "" {
		c.Logging.LogFile = defaultLogFilePath()
		fixes = append(fixes, "set default log file path")
	}
	return fixes
}
