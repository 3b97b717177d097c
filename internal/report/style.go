package report

import (
	"strings"

	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/charmbracelet/lipgloss"
)

// Severity palette shared with the TUI.
var (
	CriticalColor = lipgloss.Color("#FF4444")
	WarningColor  = lipgloss.Color("#F59E0B")
	InfoColor     = lipgloss.Color("#60A5FA")
	GoodColor     = lipgloss.Color("#22C55E")
	MutedColor    = lipgloss.Color("#64748B")

	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DD3FC"))
	mutedStyle = lipgloss.NewStyle().Foreground(MutedColor)
)

// SeverityColor returns the palette color for s.
func SeverityColor(s types.Severity) lipgloss.Color {
	switch s {
	case types.SevCritical:
		return CriticalColor
	case types.SevWarning:
		return WarningColor
	default:
		return InfoColor
	}
}

// ScoreColor follows the score ring thresholds: green from 80, amber from 60.
func ScoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return GoodColor
	case score >= 60:
		return WarningColor
	default:
		return CriticalColor
	}
}

// Badge renders the upper-case severity label, colored unless noColor.
func Badge(s types.Severity, noColor bool) string {
	label := strings.ToUpper(string(s))
	if noColor {
		return label
	}
	return badgeStyle.Foreground(SeverityColor(s)).Render(label)
}
