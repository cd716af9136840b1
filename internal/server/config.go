package server

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the server settings loaded from a toml file.
type Config struct {
	Addr         string `toml:"addr"`
	DatabasePath string `toml:"database_path"`
	LogLevel     string `toml:"log_level"`
	ListLimit    int    `toml:"list_limit"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		DatabasePath: "planit.db",
		LogLevel:     "info",
		ListLimit:    50,
	}
}

// LoadConfig reads a toml config file, filling unset fields with
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 50
	}
	return cfg, nil
}
