package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme maps the wizard's visual roles to colors
type TUITheme struct {
	Name        string
	Description string

	// Panels
	Surface lipgloss.Color
	Border  lipgloss.Color

	// Primary colors headers and the assistant label
	Primary lipgloss.Color
	// Selected colors chosen tiles and their icons
	Selected lipgloss.Color
	// Focus colors the tile or control under the cursor
	Focus lipgloss.Color
	Error lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in TUI themes
var (
	// SiteTheme is the default: safety amber on slate
	SiteTheme = TUITheme{
		Name:        "site",
		Description: "Site - Safety amber on slate",
		Surface:     lipgloss.Color("#1e293b"),
		Border:      lipgloss.Color("#475569"),
		Primary:     lipgloss.Color("#f59e0b"),
		Selected:    lipgloss.Color("#fbbf24"),
		Focus:       lipgloss.Color("#d97706"),
		Error:       lipgloss.Color("#ef4444"),
		Text:        lipgloss.Color("#e2e8f0"),
		TextDim:     lipgloss.Color("#94a3b8"),
		TextMute:    lipgloss.Color("#64748b"),
	}

	// TokyoNightTheme follows the Tokyo Night palette
	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",
		Surface:     lipgloss.Color("#24283b"),
		Border:      lipgloss.Color("#414868"),
		Primary:     lipgloss.Color("#7aa2f7"),
		Selected:    lipgloss.Color("#9ece6a"),
		Focus:       lipgloss.Color("#bb9af7"),
		Error:       lipgloss.Color("#f7768e"),
		Text:        lipgloss.Color("#c0caf5"),
		TextDim:     lipgloss.Color("#565f89"),
		TextMute:    lipgloss.Color("#3b4261"),
	}

	// CatppuccinMochaTheme follows the Catppuccin Mocha palette
	CatppuccinMochaTheme = TUITheme{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - Warm dark theme with pastel colors",
		Surface:     lipgloss.Color("#313244"),
		Border:      lipgloss.Color("#45475a"),
		Primary:     lipgloss.Color("#89b4fa"),
		Selected:    lipgloss.Color("#a6e3a1"),
		Focus:       lipgloss.Color("#cba6f7"),
		Error:       lipgloss.Color("#f38ba8"),
		Text:        lipgloss.Color("#cdd6f4"),
		TextDim:     lipgloss.Color("#6c7086"),
		TextMute:    lipgloss.Color("#45475a"),
	}

	// NordTheme follows the Nord palette
	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic, north-bluish color palette",
		Surface:     lipgloss.Color("#3b4252"),
		Border:      lipgloss.Color("#4c566a"),
		Primary:     lipgloss.Color("#88c0d0"),
		Selected:    lipgloss.Color("#a3be8c"),
		Focus:       lipgloss.Color("#b48ead"),
		Error:       lipgloss.Color("#bf616a"),
		Text:        lipgloss.Color("#eceff4"),
		TextDim:     lipgloss.Color("#7b88a1"),
		TextMute:    lipgloss.Color("#4c566a"),
	}

	// DraculaTheme follows the Dracula palette
	DraculaTheme = TUITheme{
		Name:        "dracula",
		Description: "Dracula - Dark theme with vibrant colors",
		Surface:     lipgloss.Color("#44475a"),
		Border:      lipgloss.Color("#6272a4"),
		Primary:     lipgloss.Color("#bd93f9"),
		Selected:    lipgloss.Color("#50fa7b"),
		Focus:       lipgloss.Color("#ff79c6"),
		Error:       lipgloss.Color("#ff5555"),
		Text:        lipgloss.Color("#f8f8f2"),
		TextDim:     lipgloss.Color("#6272a4"),
		TextMute:    lipgloss.Color("#44475a"),
	}
)

// builtinThemes is the display order; the first entry is the default
var builtinThemes = []TUITheme{
	SiteTheme,
	TokyoNightTheme,
	CatppuccinMochaTheme,
	NordTheme,
	DraculaTheme,
}

// currentTUITheme holds the currently active TUI theme
var currentTUITheme = SiteTheme

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if ok {
		currentTUITheme = theme
	}
	return ok
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range builtinThemes {
		if t.Name == name {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	out := make([]TUITheme, len(builtinThemes))
	copy(out, builtinThemes)
	return out
}

// TUIThemeNames returns just the theme names for selection
func TUIThemeNames() []string {
	names := make([]string, len(builtinThemes))
	for i, t := range builtinThemes {
		names[i] = t.Name
	}
	return names
}
