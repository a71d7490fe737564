package render

import (
	"os"

	"github.com/diogo/projectassist/internal/config"
)

// OptionsFromConfig builds render options from user configuration.
// GLAMOUR_STYLE takes precedence over the config file.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()

	md := cfg.Markdown
	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}

	return opts
}
