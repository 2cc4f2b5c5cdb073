package logger

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration.
type Config struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

type fileConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig logs INFO text to stderr and keeps the file sink off.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		Format:         "text",
		ConsoleEnabled: true,
		FileEnabled:    false,
		FilePath:       "logs/arena.log",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// LoadConfig reads the `logging:` block of a YAML file and applies
// LOG_LEVEL, LOG_FILE_ENABLED and LOG_FILE_PATH overrides.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fc fileConfig
			fc.Logging = cfg
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return DefaultConfig(), fmt.Errorf("parse logging config %s: %w", path, err)
			}
			cfg = fc.Logging
		case errors.Is(err, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("read logging config %s: %w", path, err)
		}
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.Level = lvl
	}
	if v := os.Getenv("LOG_FILE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.FileEnabled = enabled
		}
	}
	if p := os.Getenv("LOG_FILE_PATH"); p != "" {
		cfg.FilePath = p
	}

	return cfg, nil
}
