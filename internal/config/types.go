package config

import (
	"log/slog"
	"strings"
)

// Config holds the tool settings.
type Config struct {
	NpmBin        string `yaml:"npm_bin"`
	NpxBin        string `yaml:"npx_bin"`
	DefaultBranch string `yaml:"default_branch"`
	ServerPort    int    `yaml:"server_port"`
	LogLevel      string `yaml:"log_level"`
	NoColor       bool   `yaml:"no_color"`
}

// SlogLevel maps LogLevel to a slog level. Unknown names map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
