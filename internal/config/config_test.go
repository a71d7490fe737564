package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ReplyDelayMS != 1000 {
		t.Errorf("Expected ReplyDelayMS to be 1000, got %d", cfg.ReplyDelayMS)
	}

	if cfg.ReplyDelay() != time.Second {
		t.Errorf("Expected ReplyDelay() to be 1s, got %v", cfg.ReplyDelay())
	}

	if cfg.TUITheme != "site" {
		t.Errorf("Expected TUITheme to be 'site', got '%s'", cfg.TUITheme)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.Markdown.Style != "dark" {
		t.Errorf("Expected markdown style 'dark', got '%s'", cfg.Markdown.Style)
	}
}

func TestReplyDelay_Negative(t *testing.T) {
	cfg := Config{ReplyDelayMS: -5}
	if cfg.ReplyDelay() != 0 {
		t.Errorf("ReplyDelay() = %v, want 0", cfg.ReplyDelay())
	}
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv(HomeEnv, "")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() returned error: %v", err)
	}
	if dir == "" {
		t.Error("GetConfigDir() returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("GetConfigDir() returned relative path: %s", dir)
	}
	if filepath.Base(dir) != ".projectassist" {
		t.Errorf("GetConfigDir() should end with .projectassist, got %s", dir)
	}
}

func TestGetConfigDir_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(HomeEnv, tmpDir)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() returned error: %v", err)
	}
	if dir != tmpDir {
		t.Errorf("GetConfigDir() = %s, want %s", dir, tmpDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned error: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("GetConfigPath() returned relative path: %s", path)
	}
	if filepath.Base(path) != "config.json" {
		t.Errorf("GetConfigPath() should end with config.json, got %s", filepath.Base(path))
	}
}

func TestGetLogDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(HomeEnv, tmpDir)

	dir, err := GetLogDir()
	if err != nil {
		t.Fatalf("GetLogDir() returned error: %v", err)
	}
	if dir != filepath.Join(tmpDir, "logs") {
		t.Errorf("GetLogDir() = %s, want %s", dir, filepath.Join(tmpDir, "logs"))
	}
}

func TestEnsureConfigDir(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")
	t.Setenv(HomeEnv, tmpDir)

	dir, err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir() returned error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Directory does not exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Path is not a directory")
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(HomeEnv, tmpDir)

	cfg := DefaultConfig()
	cfg.ReplyDelayMS = 250
	cfg.TUITheme = "nord"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "config.json"))
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var saved Config
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("Failed to parse saved config: %v", err)
	}

	if saved.ReplyDelayMS != 250 {
		t.Errorf("ReplyDelayMS = %d, want 250", saved.ReplyDelayMS)
	}
	if saved.TUITheme != "nord" {
		t.Errorf("TUITheme = %s, want nord", saved.TUITheme)
	}

	info, err := os.Stat(filepath.Join(tmpDir, "config.json"))
	if err != nil {
		t.Fatalf("Failed to stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("File permissions = %o, want 644", perm)
	}
}

func TestLoadConfig_WithExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(HomeEnv, tmpDir)

	data := []byte(`{"reply_delay_ms": 50, "tui_theme": "dracula"}`)
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), data, 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.ReplyDelayMS != 50 {
		t.Errorf("ReplyDelayMS = %d, want 50", cfg.ReplyDelayMS)
	}
	if cfg.TUITheme != "dracula" {
		t.Errorf("TUITheme = %s, want dracula", cfg.TUITheme)
	}
	// Unset keys keep their defaults
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(HomeEnv, tmpDir)

	invalidJSON := `{"invalid": json content`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(invalidJSON), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("LoadConfig() with invalid JSON should return error")
	}

	if cfg.ReplyDelayMS != 1000 {
		t.Errorf("ReplyDelayMS = %d, want 1000", cfg.ReplyDelayMS)
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(Config) bool
	}{
		{"reply_delay_ms", "1500", false, func(c Config) bool { return c.ReplyDelayMS == 1500 }},
		{"reply_delay_ms", "-1", true, nil},
		{"reply_delay_ms", "soon", true, nil},
		{"reply_text", "On it.", false, func(c Config) bool { return c.ReplyText == "On it." }},
		{"copy_to_clipboard", "false", false, func(c Config) bool { return !c.CopyToClipboard }},
		{"copy_to_clipboard", "maybe", true, nil},
		{"tui_theme", "nord", false, func(c Config) bool { return c.TUITheme == "nord" }},
		{"log_level", "debug", false, func(c Config) bool { return c.LogLevel == "debug" }},
		{"log_level", "loud", true, nil},
		{"markdown_style", "light", false, func(c Config) bool { return c.Markdown.Style == "light" }},
		{"unknown", "x", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Set(%s, %s) did not apply: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestSettableKeys(t *testing.T) {
	cfg := DefaultConfig()
	for _, key := range SettableKeys() {
		if err := cfg.Set(key, "x"); err != nil && err.Error() == `unknown config key "`+key+`"` {
			t.Errorf("SettableKeys() lists %s but Set does not accept it", key)
		}
	}
}
