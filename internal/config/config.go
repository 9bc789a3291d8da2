package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/errorwrapper"
	"gopkg.in/yaml.v3"
)

// Config contains all configuration sections for the application.
type Config struct {
	EmbeddingConfig EmbeddingConfig `json:"embedding_config,omitempty" yaml:"embedding_config,omitempty"`
	StorageConfig   StorageConfig   `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultConfig creates a Config with default values for every section.
func NewDefaultConfig() *Config {
	return &Config{
		EmbeddingConfig: NewDefaultEmbeddingConfig(),
		StorageConfig:   NewDefaultStorageConfig(),
		LogConfig:       NewDefaultLogConfig(),
	}
}

// LoadConfig loads configuration from a YAML or JSON file, starting from
// defaults so omitted keys keep their default values. An empty path returns
// the defaults unchanged.
func LoadConfig(filePath string) (*Config, error) {
	cfg := NewDefaultConfig()

	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapErrorf(err, "failed to read config file '%s'", filePath)
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "config validation failed")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension.
// YAML is preferred if the extension is .yaml or .yml, JSON otherwise.
func parseConfigContent(data []byte, filePath string, cfg *Config) error {
	ext := filepath.Ext(filePath)
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
