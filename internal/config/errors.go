// Package config loads the optional run configuration for skelgen. A
// configuration file is YAML; every field has a default, and values given
// on the command line take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfigNotFound indicates the configuration file was not found.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfig is matched by every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax or an unknown key.
	ErrInvalidYAML = errors.New("config: invalid YAML")

	// ErrEmptyTarget indicates the target directory is empty.
	ErrEmptyTarget = errors.New("config: target must not be empty")

	// ErrInvalidLogLevel indicates an unrecognized log level.
	ErrInvalidLogLevel = errors.New("config: log_level must be one of: debug, info, warn, error")

	// ErrLayoutFormat indicates a layout file with an unsupported extension.
	ErrLayoutFormat = errors.New("config: layout must be a .yaml, .yml or .toml file")
)

// ValidationError reports one invalid field. Value is the rejected value,
// empty when the field itself is missing.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Value == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (%s: %q)", e.Err, e.Field, e.Value)
}

// Unwrap returns the field's sentinel.
func (e ValidationError) Unwrap() error { return e.Err }

// ValidationErrors collects every invalid field of one configuration.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes ErrInvalidConfig and each field's sentinel to errors.Is.
func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(errs)+1)
	out = append(out, ErrInvalidConfig)
	for _, e := range errs {
		out = append(out, e)
	}
	return out
}
