// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Common key binding constants.
const (
	KeyCtrlC  = "ctrl+c"
	KeyCtrlL  = "ctrl+l"
	KeyTab    = "tab"
	KeyEnter  = "enter"
	KeyEsc    = "esc"
	KeyUp     = "up"
	KeyDown   = "down"
	KeyLeft   = "left"
	KeyRight  = "right"
)

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the TUI program with the given model. If stdout is a TTY, it
// runs in alternate screen mode; otherwise it points the user at the
// non-interactive subcommands.
func Run(m tea.Model) error {
	if IsTTY() {
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
	return runFallback()
}

func runFallback() error {
	fmt.Println("Non-TTY environment detected.")
	fmt.Println("Use the subcommands instead: hiremind login, upload, ats, feedback, stats.")
	return nil
}
