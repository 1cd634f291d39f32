// Package config provides centralized configuration management for the
// importer tooling. It loads settings from environment variables with
// sensible defaults and validates them on startup to fail fast on
// misconfiguration.
package config

// Config holds all tool configuration.
// All settings can be configured via environment variables.
type Config struct {
	Logging    LoggingConfig
	Classifier ClassifierConfig
	Output     OutputConfig
	Batch      BatchConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ClassifierConfig holds file-type classification settings.
type ClassifierConfig struct {
	// PrefixLen is how many characters of the file the classifier inspects
	// when guessing the format (default: 4096)
	PrefixLen int `env:"CLASSIFY_PREFIX_LEN" default:"4096"`
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	// Pretty enables indented JSON envelopes (default: false)
	Pretty bool `env:"OUTPUT_PRETTY" default:"false"`
}

// BatchConfig holds settings for parsing several files in one invocation.
type BatchConfig struct {
	// MaxConcurrent is how many files are decoded in parallel (default: 5)
	MaxConcurrent int `env:"BATCH_MAX_CONCURRENT" default:"5"`
}
