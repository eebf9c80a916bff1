package config

import (
	"os"
	"path/filepath"

	"gradereport/internal"
	"gradereport/internal/errors"
)

// Output locations. They are fixed by contract and deliberately not read
// from the environment.
const (
	OutputDir       = "output"
	ReportFileName  = "report.txt"
	SummaryFileName = "summary.csv"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig
	Paths   PathConfig
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// PathConfig holds file system paths
type PathConfig struct {
	ReportPath  string
	SummaryPath string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Logging: *loadLoggingConfig(),
		Paths:   DefaultPaths(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// DefaultPaths returns the fixed output locations
func DefaultPaths() PathConfig {
	return PathConfig{
		ReportPath:  filepath.Join(OutputDir, ReportFileName),
		SummaryPath: filepath.Join(OutputDir, SummaryFileName),
	}
}

// LogLevel returns the parsed logging level
func (c *Config) LogLevel() internal.LogLevel {
	level, _ := internal.ParseLogLevel(c.Logging.Level)
	return level
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}
}

func validateConfig(config *Config) error {
	if _, ok := internal.ParseLogLevel(config.Logging.Level); !ok {
		return errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE")
	}
	if config.Paths.ReportPath == "" || config.Paths.SummaryPath == "" {
		return errors.ConfigInvalid("output paths are required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
