package config

import (
	"path/filepath"
	"slices"
	"strings"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var layoutExtensions = []string{".yaml", ".yml", ".toml"}

// Validate checks cfg after flag overrides are applied. It returns a
// ValidationErrors listing every invalid field, or nil.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Target == "" {
		errs = append(errs, ValidationError{Field: "target", Err: ErrEmptyTarget})
	}
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		errs = append(errs, ValidationError{Field: "log_level", Value: cfg.LogLevel, Err: ErrInvalidLogLevel})
	}
	if cfg.Layout != "" && !slices.Contains(layoutExtensions, strings.ToLower(filepath.Ext(cfg.Layout))) {
		errs = append(errs, ValidationError{Field: "layout", Value: cfg.Layout, Err: ErrLayoutFormat})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
