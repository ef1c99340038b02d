// Package config provides configuration loading and validation for the audit service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/compliance-audit/internal/ingestion"
)

// Config represents the service configuration that can be loaded from a JSON file.
// All fields are optional; missing values are filled from Defaults.
type Config struct {
	// Server
	Port          int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	UploadDir     string `json:"upload_dir,omitempty"`
	MaxFileSizeMB int    `json:"max_file_size_mb,omitempty" validate:"omitempty,min=1,max=1024"`

	// Audit behavior
	// MinTextLength of 0 means unset; the check cannot be disabled.
	MinTextLength     int      `json:"min_text_length,omitempty" validate:"omitempty,min=1"`
	DefaultDocType    string   `json:"default_doc_type,omitempty" validate:"omitempty,max=64"`
	BatchConcurrency  int      `json:"batch_concurrency,omitempty" validate:"omitempty,min=1,max=64"`
	AllowedExtensions []string `json:"allowed_extensions,omitempty" validate:"omitempty,dive,required,alphanum,lowercase"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:              5000,
		UploadDir:         "uploads",
		MaxFileSizeMB:     16,
		MinTextLength:     50,
		DefaultDocType:    "contract",
		BatchConcurrency:  4,
		AllowedExtensions: []string{"pdf", "docx", "doc", "txt", "html", "htm"},
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for _, ext := range c.AllowedExtensions {
		if !ingestion.IsKnown(ext) {
			return fmt.Errorf("config error: extension %q has no known document format", ext)
		}
	}

	if c.UploadDir != "" {
		if info, err := os.Stat(c.UploadDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: upload_dir is not a directory: %s", c.UploadDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.DefaultDocType == "" {
		result.DefaultDocType = defaults.DefaultDocType
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxFileSizeMB == 0 {
		result.MaxFileSizeMB = defaults.MaxFileSizeMB
	}
	if result.MinTextLength == 0 {
		result.MinTextLength = defaults.MinTextLength
	}
	if result.BatchConcurrency == 0 {
		result.BatchConcurrency = defaults.BatchConcurrency
	}

	if len(result.AllowedExtensions) == 0 {
		result.AllowedExtensions = slices.Clone(defaults.AllowedExtensions)
	}

	return result
}

// MaxFileSizeBytes returns the upload size limit in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// AllowsFile reports whether fileName has one of the allowed extensions.
func (c *Config) AllowsFile(fileName string) bool {
	format := ingestion.Format(fileName)
	if format == "" {
		return false
	}
	return slices.Contains(c.AllowedExtensions, strings.ToLower(format))
}
