package config

import "log/slog"

// Config holds the settings of a generation run.
type Config struct {
	// Target is the base directory the skeleton is generated into.
	Target string `yaml:"target"`

	// Layout is an optional descriptor file replacing the built-in layout.
	Layout string `yaml:"layout"`

	// Templates is an optional directory whose top-level files override or
	// extend the built-in templates.
	Templates string `yaml:"templates"`

	// Progress enables the progress display.
	Progress bool `yaml:"progress"`

	// Confirm asks before overwriting files that already exist.
	Confirm bool `yaml:"confirm"`

	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
}

// SlogLevel converts LogLevel to a slog.Level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
