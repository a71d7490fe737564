// Package config handles configuration loading and saving for projectassist.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// HomeEnv overrides the configuration directory when set
const HomeEnv = "PROJECTASSIST_HOME"

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`             // glamour style name: "dark", "light", "notty", ...
	EnableEmoji      bool   `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
}

// Config represents the user configuration
type Config struct {
	// ReplyDelayMS is how long the assistant waits before answering, in milliseconds.
	ReplyDelayMS int `json:"reply_delay_ms"`
	// ReplyText overrides the canned assistant reply when non-empty.
	ReplyText       string         `json:"reply_text,omitempty"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	TUITheme        string         `json:"tui_theme,omitempty"`
	LogLevel        string         `json:"log_level,omitempty"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ReplyDelayMS:    1000,
		CopyToClipboard: true,
		TUITheme:        "site",
		LogLevel:        "info",
		Markdown:        DefaultMarkdownConfig(),
	}
}

// ReplyDelay returns the reply delay as a duration
func (c Config) ReplyDelay() time.Duration {
	if c.ReplyDelayMS < 0 {
		return 0
	}
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return filepath.Abs(dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".projectassist"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogDir returns the directory log files are written to
func GetLogDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "logs"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SettableKeys lists the keys accepted by Set
func SettableKeys() []string {
	return []string{"reply_delay_ms", "reply_text", "copy_to_clipboard", "tui_theme", "log_level", "markdown_style"}
}

// Set updates a single field by its JSON key
func (c *Config) Set(key, value string) error {
	switch key {
	case "reply_delay_ms":
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return fmt.Errorf("invalid reply_delay_ms %q: must be a non-negative integer", value)
		}
		c.ReplyDelayMS = ms
	case "reply_text":
		c.ReplyText = value
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid copy_to_clipboard %q: %w", value, err)
		}
		c.CopyToClipboard = b
	case "tui_theme", "theme":
		c.TUITheme = value
	case "log_level":
		switch value {
		case "trace", "debug", "info", "warn", "error", "disabled":
			c.LogLevel = value
		default:
			return fmt.Errorf("invalid log_level %q", value)
		}
	case "markdown_style":
		c.Markdown.Style = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
