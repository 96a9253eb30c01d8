package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName names the per-user config and cache directories.
const AppName = "create-component"

// GlobalConfig holds the user's default flag values.
// Nil fields were not set in the file.
type GlobalConfig struct {
	Functional *bool `yaml:"functional"`
	Styles     *bool `yaml:"styles"`
	NoColor    *bool `yaml:"no_color"`
}

// DefaultConfigDir returns the default configuration directory, respecting XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", AppName)
	}

	return filepath.Join(home, ".config", AppName)
}

// DefaultConfigPath returns the default location of the user defaults file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// DefaultCacheDir returns the cache directory, respecting XDG_CACHE_HOME.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".cache", AppName)
	}

	return filepath.Join(dir, AppName)
}

// LoadGlobalConfig reads the user defaults from the given path.
// If the file doesn't exist, it returns a zero-value config (no error).
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}

		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}

// BoolOr returns *p, or def when p is nil.
func BoolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}

	return *p
}
