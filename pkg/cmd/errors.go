package cmd

import "fmt"

// ConversionError reports a raw token that could not be converted to a
// parameter's declared type. Raised by value parsers during binding.
type ConversionError struct {
	Raw    string
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q: %s", e.Raw, e.Reason)
}

// MissingParameterError reports a required parameter that resolved to no
// value after binding.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("parameter %s is required", e.Param)
}

// DuplicateNameError reports a registration that reuses an existing command
// name or alias. Raised before any dispatch occurs; treat it as a programmer
// error and abort startup.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a command named %q already exists", e.Name)
}

// ConfigurationError reports a parameter descriptor that violates a
// structural invariant. Returned at construction time, never during
// invocation.
type ConfigurationError struct {
	Param  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("parameter %s: %s", e.Param, e.Reason)
}
