// Package config holds the app configuration shared by the TUI and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ecoaliados/pkg/logger"
)

// Config holds all app configuration
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	UI          UIConfig          `yaml:"ui"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Logging     logger.Config     `yaml:"logging"`
}

// StorageConfig locates the durable store.
type StorageConfig struct {
	Path string `yaml:"path"` // sqlite file holding the records
}

// UIConfig for UI preferences
type UIConfig struct {
	Theme    string `yaml:"theme"`
	PageSize int    `yaml:"page_size"`
}

// LeaderboardConfig tunes peer synthesis.
type LeaderboardConfig struct {
	Variance float64 `yaml:"variance"` // spread of peer stats around the user's
}

// Default returns default configuration
func Default() *Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".ecoaliados")
	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(dataDir, "ecoaliados.db"),
		},
		UI: UIConfig{
			Theme:    "dracula",
			PageSize: 20,
		},
		Leaderboard: LeaderboardConfig{
			Variance: 0.5,
		},
		Logging: logger.Config{
			Level:  "info",
			Format: "text",
			Output: filepath.Join(dataDir, "ecoaliados.log"),
		},
	}
}

// Load loads configuration from file, falling back to defaults
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfigFile()
	}

	// If still no config found, use defaults
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Default(), nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save saves configuration to file
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// findConfigFile searches for config in standard locations
func findConfigFile() string {
	locations := []string{
		"./ecoaliados.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "ecoaliados", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".ecoaliados", "config.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}
