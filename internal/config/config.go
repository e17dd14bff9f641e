// Package config loads the huectl configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Filename is the configuration file name inside the config directory.
const Filename = "config.toml"

// XDG helpers
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "huectl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "huectl")
}

// Path returns the expected location of the configuration file.
func Path() string {
	return filepath.Join(configDir(), Filename)
}

// Config represents the application configuration.
type Config struct {
	// Username is the bridge API credential obtained via `huectl register`.
	Username string `mapstructure:"username"`
}

// Load reads the configuration file. The file must exist and contain a
// username; there are no defaults and no environment overrides.
func Load() (*Config, error) {
	path := Path()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("config file %s is missing required option %q", path, "username")
	}

	return &cfg, nil
}
