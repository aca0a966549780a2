// Package config loads and validates memovox configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Model is a registry name (e.g. "base.en") or an explicit path to
	// a ggml .bin file.
	Model     string      `yaml:"model"`
	ModelsDir string      `yaml:"models_dir"`
	MemosDir  string      `yaml:"memos_dir"`
	Audio     AudioConfig `yaml:"audio"`
	LogLevel  string      `yaml:"log_level"`
}

// AudioConfig holds capture settings. Whisper models expect 16kHz
// mono, so those are the defaults.
type AudioConfig struct {
	SampleRate uint32 `yaml:"sample_rate"`
	Channels   uint32 `yaml:"channels"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "memovox")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// DefaultDataDir returns the default data directory path.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "memovox")
}

// Default returns a Config with sensible default values.
func Default() *Config {
	data := DefaultDataDir()
	return &Config{
		Model:     "base.en",
		ModelsDir: filepath.Join(data, "models"),
		MemosDir:  filepath.Join(data, "memos"),
		Audio: AudioConfig{
			SampleRate: 16000,
			Channels:   1,
		},
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file. Missing fields are filled
// with defaults. A leading ~ in paths expands to the home directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Model = expandTilde(cfg.Model)
	cfg.ModelsDir = expandTilde(cfg.ModelsDir)
	cfg.MemosDir = expandTilde(cfg.MemosDir)

	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.ModelsDir == "" {
		return fmt.Errorf("models_dir must not be empty")
	}
	if c.MemosDir == "" {
		return fmt.Errorf("memos_dir must not be empty")
	}

	if c.Audio.SampleRate == 0 {
		return fmt.Errorf("audio.sample_rate must be > 0")
	}
	switch c.Audio.Channels {
	case 1, 2:
	default:
		return fmt.Errorf("audio.channels must be 1 or 2, got %d", c.Audio.Channels)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	return nil
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
