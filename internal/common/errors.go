// Package common holds the small shared pieces the rest of the module leans
// on: the error vocabulary and the injectable clock.
package common

import "fmt"

// WrapError prefixes err with message. The wrapped error stays reachable
// through errors.Is and errors.As. A nil err passes through as nil.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf is WrapError with a printf-style prefix
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError builds a fresh error from a printf-style message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError marks a single field whose value was rejected. The
// offending value is carried along so log lines show what was actually seen.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for '%s': %s (got %v)", e.Field, e.Message, e.Value)
}

// NewValidationError builds a ValidationError for the given field
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ConfigurationError marks a configuration section or field that cannot be
// used as given. Field may be empty when the whole section is at fault.
type ConfigurationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Section != "" && e.Field != "":
		return fmt.Sprintf("bad configuration: %s.%s: %s", e.Section, e.Field, e.Reason)
	case e.Section != "":
		return fmt.Sprintf("bad configuration: %s: %s", e.Section, e.Reason)
	default:
		return fmt.Sprintf("bad configuration: %s", e.Reason)
	}
}

// NewConfigurationError builds a ConfigurationError for the given section
// and field.
func NewConfigurationError(section, field, reason string) *ConfigurationError {
	return &ConfigurationError{
		Section: section,
		Field:   field,
		Reason:  reason,
	}
}
