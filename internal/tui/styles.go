// Package tui provides the terminal user interface for projectassist.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/projectassist/internal/render"
)

// Color variables (updated from theme)
var (
	colorSurface lipgloss.Color
	colorBorder  lipgloss.Color

	colorPrimary  lipgloss.Color
	colorSelected lipgloss.Color
	colorFocus    lipgloss.Color
	colorError    lipgloss.Color

	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorTextMute lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	// Header panel style
	headerStyle lipgloss.Style

	// Title style for header
	titleStyle lipgloss.Style

	// Subtitle style under the title
	subtitleStyle lipgloss.Style

	// Hint text style
	hintStyle lipgloss.Style

	// Option tiles
	tileStyle         lipgloss.Style
	tileSelectedStyle lipgloss.Style
	tileCursorStyle   lipgloss.Style
	tileTitleStyle    lipgloss.Style
	tileDescStyle     lipgloss.Style
	tileIconStyle     lipgloss.Style
	tileIconOnStyle   lipgloss.Style

	// Continue control
	continueStyle         lipgloss.Style
	continueDisabledStyle lipgloss.Style
	continueFocusedStyle  lipgloss.Style

	// Messages area panel
	messagesAreaStyle lipgloss.Style

	// Message bubbles
	userBubbleStyle      lipgloss.Style
	userLabelStyle       lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	assistantLabelStyle  lipgloss.Style

	// Input area
	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style

	// Typing indicator
	loadingStyle lipgloss.Style

	// Status bar styles
	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	errorStyle    lipgloss.Style
	feedbackStyle lipgloss.Style
)

func init() {
	UpdateTheme()
}

// ApplyTheme switches to the named theme and rebuilds styles.
// It returns false and keeps the current theme when the name is unknown.
func ApplyTheme(name string) bool {
	if !render.SetTUITheme(name) {
		return false
	}
	UpdateTheme()
	return true
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorSurface = theme.Surface
	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorSelected = theme.Selected
	colorFocus = theme.Focus
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles()
}

// rebuildStyles creates all lipgloss styles with current color values
func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderTop(true).
		BorderForeground(colorPrimary).
		Background(colorSurface).
		Padding(0, 2).
		MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	tileStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	tileSelectedStyle = tileStyle.
		BorderForeground(colorSelected)

	tileCursorStyle = tileStyle.
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(colorFocus)

	tileTitleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	tileDescStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	tileIconStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		MarginRight(1)

	tileIconOnStyle = lipgloss.NewStyle().
		Foreground(colorSelected).
		MarginRight(1)

	continueStyle = lipgloss.NewStyle().
		Foreground(colorSurface).
		Background(colorPrimary).
		Bold(true).
		Align(lipgloss.Center).
		MarginTop(1)

	continueFocusedStyle = continueStyle.
		Background(colorFocus).
		Underline(true)

	continueDisabledStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Background(colorSurface).
		Align(lipgloss.Center).
		MarginTop(1)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1).
		MarginLeft(4)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginLeft(4)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Foreground(colorText).
		Padding(0, 1).
		MarginRight(4)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginTop(1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginRight(1)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorFocus).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	feedbackStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)
}

// FormatError returns a styled error line
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render(fmt.Sprintf("✗ %v", err))
}
