package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive program and remembers the last target.
func Run(opts Options) error {
	m := NewModel(opts)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Target() != "" {
		prefs := opts.Prefs
		prefs.LastTarget = fm.Target()
		_ = SavePrefs(prefs)
	}
	return nil
}
