package tui

import (
	"fmt"
	"os"

	"github.com/a11yscan/a11yscan/internal/ci"
	"github.com/a11yscan/a11yscan/internal/report"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// copyFix copies the selected issue's suggested fix to the clipboard.
func (m Model) copyFix() tea.Cmd {
	is := m.selectedIssue()
	if is == nil {
		return func() tea.Msg { return statusMsg("No issue selected") }
	}
	if err := clipboardWrite(is.Fix); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Copied fix for #%d (%s)", is.SequenceID, is.Rule)) }
}

// copyCIConfig copies the GitHub workflow shown in the CI tab.
func (m Model) copyCIConfig() tea.Cmd {
	tpl, err := ci.Lookup("github")
	if err != nil {
		return func() tea.Msg { return statusMsg(err.Error()) }
	}
	if err := clipboardWrite(tpl.Content); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg("Copied " + tpl.Path) }
}

func (m *Model) addToBaseline() tea.Cmd {
	is := m.selectedIssue()
	if is == nil {
		return nil
	}
	if m.baselinePath == "" {
		return func() tea.Msg { return statusMsg("No baseline file configured") }
	}
	if err := report.AddToBaseline(m.baselinePath, m.result.Target, *is); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Error writing baseline: %v", err)) }
	}
	m.baselined[report.Key(m.result.Target, *is)] = true
	m.refreshRows()
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Added #%d to %s", is.SequenceID, m.baselinePath)) }
}

// ignoreFile appends the selected issue's file to the ignore file.
func (m Model) ignoreFile() tea.Cmd {
	is := m.selectedIssue()
	if is == nil {
		return nil
	}
	if m.ignorePath == "" {
		return func() tea.Msg { return statusMsg("No ignore file configured") }
	}
	file, err := os.OpenFile(m.ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Error opening %s: %v", m.ignorePath, err)) }
	}
	defer func() { _ = file.Close() }()

	if _, err := file.WriteString(is.FilePath + "\n"); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Error writing to %s: %v", m.ignorePath, err)) }
	}
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Added %s to %s", is.FilePath, m.ignorePath)) }
}
