// Package config holds meshsev's runtime configuration: the data and model
// roots, forest hyperparameters, and logging level. Values come from an
// optional YAML file overridden by environment variables, with defaults
// applied last.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all meshsev configuration.
type Config struct {
	DataRoot   string        `yaml:"data_root"`   // vehicle data directories live here
	ModelsRoot string        `yaml:"models_root"` // persisted models live here
	Forest     ForestConfig  `yaml:"forest"`
	Logging    LoggingConfig `yaml:"logging"`
}

// ForestConfig holds classifier training hyperparameters.
type ForestConfig struct {
	NumTrees int   `yaml:"num_trees"`
	MaxDepth int   `yaml:"max_depth"`
	Seed     int64 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads configuration from the file named by MESHSEV_CONFIG (default
// meshsev.yaml, absence tolerated), applies environment overrides, then
// fills defaults.
func Load() (Config, error) {
	var cfg Config

	path := getenv("MESHSEV_CONFIG", "meshsev.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No file is fine; env and defaults carry the run.
	default:
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MESHSEV_DATA_ROOT"); v != "" {
		c.DataRoot = v
	}
	if v := os.Getenv("MESHSEV_MODELS_ROOT"); v != "" {
		c.ModelsRoot = v
	}
	if v := os.Getenv("MESHSEV_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenvInt("MESHSEV_FOREST_TREES"); v > 0 {
		c.Forest.NumTrees = v
	}
	if v := getenvInt("MESHSEV_FOREST_DEPTH"); v > 0 {
		c.Forest.MaxDepth = v
	}
}

func (c *Config) applyDefaults() {
	if c.DataRoot == "" {
		c.DataRoot = "data"
	}
	if c.ModelsRoot == "" {
		c.ModelsRoot = "models"
	}
	if c.Forest.NumTrees == 0 {
		c.Forest.NumTrees = 200
	}
	if c.Forest.MaxDepth == 0 {
		c.Forest.MaxDepth = 20
	}
	if c.Forest.Seed == 0 {
		c.Forest.Seed = 42
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
