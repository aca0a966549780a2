package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Model != "base.en" {
		t.Errorf("Model = %q, want base.en", cfg.Model)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Channels != 1 {
		t.Errorf("Channels = %d, want 1", cfg.Audio.Channels)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
model: small-q5
memos_dir: /tmp/memos
audio:
  sample_rate: 16000
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Model != "small-q5" {
		t.Errorf("Model = %q, want small-q5", cfg.Model)
	}
	if cfg.MemosDir != "/tmp/memos" {
		t.Errorf("MemosDir = %q", cfg.MemosDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// Unset fields keep their defaults.
	if cfg.Audio.Channels != 1 {
		t.Errorf("Channels = %d, want default 1", cfg.Audio.Channels)
	}
	if cfg.ModelsDir == "" {
		t.Error("ModelsDir lost its default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on invalid YAML")
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "memos_dir: ~/memos\nmodels_dir: ~/models\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(cfg.MemosDir, home) {
		t.Errorf("MemosDir = %q, tilde not expanded", cfg.MemosDir)
	}
	if !strings.HasPrefix(cfg.ModelsDir, home) {
		t.Errorf("ModelsDir = %q, tilde not expanded", cfg.ModelsDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty model", func(c *Config) { c.Model = "" }, "model"},
		{"empty memos dir", func(c *Config) { c.MemosDir = "" }, "memos_dir"},
		{"empty models dir", func(c *Config) { c.ModelsDir = "" }, "models_dir"},
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "sample_rate"},
		{"too many channels", func(c *Config) { c.Audio.Channels = 6 }, "channels"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
