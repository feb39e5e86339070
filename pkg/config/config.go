// Package config defines configuration types for linesmith.
// These are pure data structures; file loading and environment overrides
// live in loader.go and env.go.
package config

import (
	"fmt"
	"time"
)

// Defaults for the editing session.
const (
	// DefaultMaxEditLines is the ceiling on how many lines one select may address.
	DefaultMaxEditLines = 200

	// DefaultContextLines is the number of unchanged lines shown around a diff preview.
	DefaultContextLines = 3

	// DefaultValidatorTimeoutSeconds bounds external syntax-check processes.
	DefaultValidatorTimeoutSeconds = 10
)

// Config is the root configuration structure for linesmith.
type Config struct {
	// MaxEditLines is the maximum number of lines a single select may cover.
	// Read operations are not subject to this ceiling.
	MaxEditLines int `yaml:"max_edit_lines"`

	// ContextLines controls how many unchanged lines surround a diff preview.
	// A negative value means the whole remaining file is shown as context.
	ContextLines int `yaml:"context_lines"`

	// ValidatorTimeoutSeconds bounds each external syntax-check invocation.
	ValidatorTimeoutSeconds int `yaml:"validator_timeout_seconds"`

	// LogLevel sets the logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Validators enables or disables individual syntax gates by extension
	// (lowercase, with leading dot). Absent extensions keep their default.
	Validators map[string]bool `yaml:"validators"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		MaxEditLines:            DefaultMaxEditLines,
		ContextLines:            DefaultContextLines,
		ValidatorTimeoutSeconds: DefaultValidatorTimeoutSeconds,
		LogLevel:                "info",
	}
}

// ValidatorTimeout returns the external validator timeout as a duration.
func (c *Config) ValidatorTimeout() time.Duration {
	secs := c.ValidatorTimeoutSeconds
	if secs <= 0 {
		secs = DefaultValidatorTimeoutSeconds
	}
	return time.Duration(secs) * time.Second
}

// ValidatorEnabled reports whether the syntax gate for ext is enabled.
// Extensions not mentioned in the Validators map default to enabled.
func (c *Config) ValidatorEnabled(ext string) bool {
	if c.Validators == nil {
		return true
	}
	enabled, ok := c.Validators[ext]
	if !ok {
		return true
	}
	return enabled
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxEditLines < 1 {
		return fmt.Errorf("max_edit_lines must be at least 1, got %d", c.MaxEditLines)
	}
	if c.ValidatorTimeoutSeconds < 0 {
		return fmt.Errorf("validator_timeout_seconds cannot be negative, got %d", c.ValidatorTimeoutSeconds)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Validators != nil {
		clone.Validators = make(map[string]bool, len(c.Validators))
		for k, v := range c.Validators {
			clone.Validators[k] = v
		}
	}
	return &clone
}
