// Package config loads the athletiq YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avela/athletiq/internal/discipline"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the SQLite settings.
type DatabaseConfig struct {
	// Path is the database file path.
	Path string `yaml:"path"`
}

// ExtractorConfig holds the external pose-extraction command settings.
type ExtractorConfig struct {
	// Command is the executable that turns a video into detections.
	Command string `yaml:"command"`
	// TimeoutMs bounds a single extraction run.
	TimeoutMs int `yaml:"timeout_ms"`
}

// Config is the full application configuration.
type Config struct {
	Server      ServerConfig         `yaml:"server"`
	Database    DatabaseConfig       `yaml:"database"`
	Extractor   ExtractorConfig      `yaml:"extractor"`
	Disciplines discipline.ConfigSet `yaml:"disciplines"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server:      ServerConfig{Addr: ":8080"},
		Database:    DatabaseConfig{Path: "athletiq.db"},
		Extractor:   ExtractorConfig{Command: "athletiq-extract", TimeoutMs: 120000},
		Disciplines: discipline.DefaultConfigSet(),
	}
}

// Load reads the configuration file at path, overlaying it on the defaults
// so partial files only override what they mention. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
