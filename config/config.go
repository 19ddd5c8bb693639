package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/fqrewrite/internal/adapters/compression"
)

type Config struct {
	CompressionLevel int    `yaml:"compression_level"` // Gzip compression level (1-9)
	BufferSize       uint32 `yaml:"buffer_size"`       // Initial read-buffer size in bytes
	MaxLineSize      uint32 `yaml:"max_line_size"`     // Maximum length of one input line
	KeepPartial      bool   `yaml:"keep_partial"`      // Keep partial output files on failure
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		CompressionLevel: compression.DefaultLevel,
		BufferSize:       64 * 1024,        // 64KB
		MaxLineSize:      64 * 1024 * 1024, // 64MB
		KeepPartial:      false,
	}
}

// Loads configuration from a YAML file. Fields absent from the file
// keep their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.CompressionLevel < compression.FastestLevel || config.CompressionLevel > compression.BestLevel {
		return fmt.Errorf("compression_level must be between %d and %d", compression.FastestLevel, compression.BestLevel)
	}

	if config.BufferSize == 0 {
		return fmt.Errorf("buffer_size must be greater than 0")
	}

	if config.MaxLineSize < config.BufferSize {
		return fmt.Errorf("max_line_size must be greater than or equal to buffer_size")
	}

	return nil
}
