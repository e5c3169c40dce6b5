package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Getenv looks up an environment variable. Tests substitute a map lookup.
type Getenv func(key string) string

// ResolvePath returns the configuration file location: $GENOVA_CONFIG, then
// $XDG_CONFIG_HOME/genova/config.yaml, then ~/.config/genova/config.yaml.
// An empty result means no location could be determined.
func ResolvePath(getenv Getenv) string {
	if p := getenv(EnvConfigPath); p != "" {
		return filepath.Clean(p)
	}
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, DefaultConfigDirName, DefaultConfigFile)
	}
	home := getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", DefaultConfigDirName, DefaultConfigFile)
}

// Load reads the configuration file at path, applies defaults and
// validates the result. A missing file or an empty path yields the
// defaults. Invalid YAML and invalid values are errors.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv resolves the configuration path from the process
// environment and loads it.
func LoadFromEnv() (*Config, string, error) {
	path := ResolvePath(os.Getenv)
	cfg, err := Load(path)
	return cfg, path, err
}
