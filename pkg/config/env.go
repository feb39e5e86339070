package config

import (
	"fmt"
	"os"
	"strconv"
)

// envVarPrefix is the prefix for all linesmith environment variables.
const envVarPrefix = "LINESMITH_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with LINESMITH_ (e.g. LINESMITH_MAX_EDIT_LINES).
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if err := envInt("MAX_EDIT_LINES", &cfg.MaxEditLines); err != nil {
		return err
	}
	if err := envInt("CONTEXT_LINES", &cfg.ContextLines); err != nil {
		return err
	}
	if err := envInt("VALIDATOR_TIMEOUT_SECONDS", &cfg.ValidatorTimeoutSeconds); err != nil {
		return err
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return nil
}

// envInt applies an integer environment override, if set.
func envInt(suffix string, field *int) error {
	envVar := envVarPrefix + suffix
	value := os.Getenv(envVar)
	if value == "" {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for %s: %q", envVar, value)
	}
	*field = i
	return nil
}

// ListEnvVars returns the supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		envVarPrefix + "MAX_EDIT_LINES":            "Maximum lines a single select may cover",
		envVarPrefix + "CONTEXT_LINES":             "Unchanged lines shown around diff previews (negative = whole file)",
		envVarPrefix + "VALIDATOR_TIMEOUT_SECONDS": "Timeout for external syntax-check processes",
		envVarPrefix + "LOG_LEVEL":                 "Log level: debug, info, warn, or error",
	}
}
