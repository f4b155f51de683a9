// Package config loads and stores the entforge project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config represents the flat entforge configuration.
type Config struct {
	Version       string   `json:"version"`
	DefaultFormat string   `json:"default_format,omitempty"` // annotation, php, xml or yml
	Bundles       []Bundle `json:"bundles,omitempty"`
}

// Bundle registers one bundle alias.
type Bundle struct {
	Alias     string `json:"alias"`
	Namespace string `json:"namespace"` // e.g. Acme\BlogBundle
	Dir       string `json:"dir"`       // bundle root, relative to the project root
}

// DefaultConfig returns a fresh configuration.
func DefaultConfig() *Config {
	return &Config{
		Version:       "1",
		DefaultFormat: "annotation",
	}
}

// LoadConfig reads .entforge/config.json from the specified directory.
// Resolution order: dir only (no home fallback). A .env file in dir and
// ENTFORGE_* environment variables override individual settings.
// Returns an error if no config is found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".entforge", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(&cfg, dir)

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "annotation"
	}
	return &cfg, nil
}

// applyEnv layers .env and process environment overrides onto cfg.
func applyEnv(cfg *Config, dir string) {
	godotenv.Load(filepath.Join(dir, ".env")) // absent .env is fine
	if format := os.Getenv("ENTFORGE_FORMAT"); format != "" {
		cfg.DefaultFormat = format
	}
}

// SaveConfig writes config.json to the directory.
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".entforge")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .entforge dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
