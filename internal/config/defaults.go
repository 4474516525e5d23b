package config

// Default value constants.
const (
	DefaultTarget   = "."
	DefaultLogLevel = "warn"
)

// NewDefaultConfig returns a Config with every field at its default.
func NewDefaultConfig() *Config {
	return &Config{
		Target:   DefaultTarget,
		LogLevel: DefaultLogLevel,
	}
}
