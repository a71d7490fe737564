// Package logging configures the zerolog logger for projectassist.
// Logs go to a file under the config directory because the TUI owns the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/diogo/projectassist/internal/config"
)

// LogFileName is the file written inside the log directory
const LogFileName = "projectassist.log"

// ParseLevel maps a config level name to a zerolog level. Unknown or empty
// names fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return zerolog.InfoLevel
	case "disabled", "off":
		return zerolog.Disabled
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// New builds a logger writing JSON lines to w
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("app", "projectassist").
		Logger()
}

// Setup opens the log file, installs the logger as zerolog's global logger
// and returns it along with the file to close on exit.
func Setup(level string, debug bool) (zerolog.Logger, io.Closer, error) {
	if debug {
		level = "debug"
	}

	dir, err := config.GetLogDir()
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := New(f, level)
	log.Logger = logger

	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
