package commands

import (
	"os"

	"golang.org/x/term"

	"github.com/diogo/projectassist/internal/session"
	"github.com/diogo/projectassist/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunWizard(sess *session.Session, opts tui.Options) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// TUI is the terminal user interface.
	TUI TUIInterface

	// IsTerminal reports whether stdin and stdout are attached to a terminal.
	IsTerminal func() bool
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunWizard(sess *session.Session, opts tui.Options) error {
	return tui.RunWizard(sess, opts)
}

// stdioIsTerminal checks both ends the alt-screen program needs
func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:        &DefaultTUI{},
		IsTerminal: stdioIsTerminal,
	}
}
