package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/a11yscan/a11yscan/internal/ci"
	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/report"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	detailPaneBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DD3FC")).
			Bold(true).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E2E8F0")).
			Background(lipgloss.Color("#1E3A5F")).
			Bold(true).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(report.MutedColor).
				Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(report.MutedColor).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(report.WarningColor)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1E3A5F")).
			Padding(1, 4)
)

// stageLabels are shown one after another while a scan is in progress.
var stageLabels = []string{
	"Initialising Puppeteer",
	"Fetching DOM…",
	"Running axe-core rules",
	"Checking ARIA attributes",
	"Analysing colour contrast",
	"Auditing keyboard paths",
	"Building report…",
}

const stageInterval = 350 * time.Millisecond

type phase int

const (
	phaseInput phase = iota
	phaseScanning
	phaseResults
)

type tab int

const (
	tabIssues tab = iota
	tabCI
)

const defaultStatus = "q: quit | tab: issues/ci | j/k: navigate | c: copy | b: baseline | i: ignore | r: rescan"

type (
	statusMsg   string
	stageMsg    struct{}
	scanDoneMsg struct {
		result engine.TargetResult
		err    error
	}
)

// ScanFunc synthesizes the report for one target.
type ScanFunc func(target string) (engine.TargetResult, error)

// Model represents the main state of the TUI application.
type Model struct {
	phase    phase
	tab      tab
	input    textinput.Model
	spinner  spinner.Model
	table    table.Model
	viewport viewport.Model

	scan         ScanFunc
	target       string
	result       engine.TargetResult
	hasResult    bool
	pending      *scanDoneMsg // arrived before the stage animation finished
	stage        int
	baselinePath string
	ignorePath   string
	baselined    map[string]bool
	noColor      bool

	ready         bool
	quitting      bool
	width         int
	height        int
	statusMessage string
	statusTimeout *time.Time
}

// Options configures a TUI session.
type Options struct {
	Target       string
	Scan         ScanFunc
	Baseline     report.Baseline
	BaselinePath string
	IgnorePath   string
	NoColor      bool
	Prefs        Prefs
}

// NewModel initializes a new TUI model. With an empty Target it starts on the
// URL prompt; otherwise Init starts scanning right away.
func NewModel(opts Options) Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Sev", Width: 10},
		{Title: "Rule", Width: 22},
		{Title: "Location", Width: 36},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E2E8F0")).
		Background(lipgloss.Color("#1E3A5F")).
		Bold(true)
	s.Cell = lipgloss.NewStyle().
		Padding(0, 1)
	t.SetStyles(s)

	// Line spinner avoids Braille characters that render poorly on some terminals
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(report.InfoColor)

	ti := textinput.New()
	ti.Placeholder = "https://your-app.com"
	ti.CharLimit = 2048
	ti.Width = 50
	ti.Prompt = "URL › "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(report.InfoColor)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	ti.SetValue(opts.Prefs.LastTarget)

	m := Model{
		phase:         phaseInput,
		input:         ti,
		spinner:       sp,
		table:         t,
		viewport:      viewport.New(80, 10),
		scan:          opts.Scan,
		target:        strings.TrimSpace(opts.Target),
		baselinePath:  opts.BaselinePath,
		ignorePath:    opts.IgnorePath,
		baselined:     map[string]bool{},
		noColor:       opts.NoColor,
		statusMessage: "enter: scan | esc: quit",
	}
	for key := range opts.Baseline.Items {
		m.baselined[key] = true
	}
	if opts.Prefs.StartOnCI {
		m.tab = tabCI
	}
	if m.target != "" {
		m.phase = phaseScanning
	} else {
		m.input.Focus()
	}
	return m
}

// Target is the most recently scanned or requested target.
func (m Model) Target() string { return m.target }

func (m Model) Init() tea.Cmd {
	if m.phase == phaseScanning {
		return tea.Batch(m.spinner.Tick, m.scanCmd(m.target), stageTick())
	}
	return textinput.Blink
}

func stageTick() tea.Cmd {
	return tea.Tick(stageInterval, func(time.Time) tea.Msg { return stageMsg{} })
}

func (m Model) scanCmd(target string) tea.Cmd {
	scan := m.scan
	return func() tea.Msg {
		if scan == nil {
			return scanDoneMsg{err: fmt.Errorf("scanning is not available")}
		}
		res, err := scan(target)
		return scanDoneMsg{result: res, err: err}
	}
}

// startScan switches to the scanning phase for target.
func (m *Model) startScan(target string) tea.Cmd {
	m.target = target
	m.phase = phaseScanning
	m.stage = 0
	m.pending = nil
	m.input.Blur()
	return tea.Batch(m.spinner.Tick, m.scanCmd(target), stageTick())
}

// finishScan reveals a completed scan once the stage animation is over.
func (m *Model) finishScan() {
	done := m.pending
	m.pending = nil
	if done.err != nil {
		m.phase = phaseInput
		m.input.Focus()
		m.setStatus(fmt.Sprintf("Scan error: %v", done.err))
		return
	}
	m.result = done.result
	m.hasResult = true
	m.phase = phaseResults
	m.refreshRows()
	m.table.SetCursor(0)
	m.updateViewportContent()
	m.setStatus(fmt.Sprintf("Scan complete - %d issues, score %d", len(m.result.Shown), m.result.Report.Score))
}

func (m *Model) setStatus(s string) {
	timeout := time.Now().Add(4 * time.Second)
	m.statusTimeout = &timeout
	m.statusMessage = s
}

func (m *Model) refreshRows() {
	rows := make([]table.Row, len(m.result.Shown))
	for i, is := range m.result.Shown {
		sev := strings.ToUpper(string(is.Severity))
		if m.baselined[report.Key(m.result.Target, is)] {
			sev = "(b) " + sev
		}
		rows[i] = table.Row{
			fmt.Sprint(is.SequenceID),
			sev,
			is.Rule,
			fmt.Sprintf("%s:%d", is.FilePath, is.Line),
		}
	}
	m.table.SetRows(rows)
}

func (m Model) selectedIssue() *types.Issue {
	if len(m.result.Shown) == 0 {
		return nil
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.result.Shown) {
		return nil
	}
	return &m.result.Shown[i]
}

func (m *Model) updateViewportContent() {
	if m.tab == tabCI {
		m.viewport.SetContent(ciContent(m.noColor))
		return
	}
	is := m.selectedIssue()
	if is == nil {
		m.viewport.SetContent(lipgloss.NewStyle().Foreground(report.GoodColor).Render("[OK] No accessibility issues to show"))
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n\n", report.Badge(is.Severity, m.noColor), is.Rule, labelStyle.Render(is.StandardReference))
	b.WriteString(is.Description + "\n")
	if is.Note != "" {
		b.WriteString("\n" + noteStyle.Render("⚠ "+is.Note) + "\n")
	}
	b.WriteString("\n" + labelStyle.Render("← BEFORE") + "\n")
	b.WriteString(m.code(is.Element, is.FilePath) + "\n")
	b.WriteString("\n" + labelStyle.Render("→ SUGGESTED FIX") + "\n")
	b.WriteString(m.code(is.Fix, is.FilePath) + "\n")
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m Model) code(src, file string) string {
	if m.noColor {
		return src
	}
	return strings.TrimRight(report.Highlight(src, file), "\n")
}

func ciContent(noColor bool) string {
	tpl, _ := ci.Lookup("github")
	if noColor {
		return tpl.Content
	}
	return strings.TrimRight(report.Highlight(tpl.Content, "workflow.yml"), "\n")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.phase {
		case phaseInput:
			return m.updateInput(msg)
		case phaseScanning:
			return m, nil
		}
		return m.updateResults(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()

	case stageMsg:
		if m.phase != phaseScanning {
			return m, nil
		}
		if m.stage < len(stageLabels)-1 {
			m.stage++
			return m, stageTick()
		}
		if m.pending != nil {
			m.finishScan()
			return m, nil
		}
		return m, stageTick()

	case scanDoneMsg:
		m.pending = &msg
		if m.stage >= len(stageLabels)-1 {
			m.finishScan()
		}
		return m, nil

	case statusMsg:
		m.setStatus(string(msg))

	case spinner.TickMsg:
		var spinCmd tea.Cmd
		m.spinner, spinCmd = m.spinner.Update(msg)
		if m.statusTimeout != nil && time.Now().After(*m.statusTimeout) {
			m.statusTimeout = nil
			m.statusMessage = defaultStatus
		}
		return m, spinCmd
	}

	if m.phase == phaseInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		target := strings.TrimSpace(m.input.Value())
		if target == "" {
			m.setStatus("Enter a URL to scan")
			return m, nil
		}
		return m, m.startScan(target)
	case "esc":
		if m.hasResult {
			m.phase = phaseResults
			m.input.Blur()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		if m.tab == tabIssues {
			m.tab = tabCI
		} else {
			m.tab = tabIssues
		}
		m.updateViewportContent()
		return m, nil
	case "c":
		if m.tab == tabCI {
			return m, m.copyCIConfig()
		}
		return m, m.copyFix()
	case "b":
		cmd := m.addToBaseline()
		return m, cmd
	case "i":
		return m, m.ignoreFile()
	case "r":
		m.phase = phaseInput
		m.input.SetValue(m.target)
		m.input.CursorEnd()
		m.statusMessage = "enter: scan | esc: back"
		return m, m.input.Focus()
	case "pgdown", "ctrl+f":
		m.viewport.HalfViewDown()
		return m, nil
	case "pgup", "ctrl+b":
		m.viewport.HalfViewUp()
		return m, nil
	}
	if m.tab == tabIssues {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		m.updateViewportContent()
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	usable := m.width - 8
	if usable < 60 {
		usable = 60
	}
	cols := m.table.Columns()
	cols[0].Width = 3
	cols[1].Width = 14
	cols[2].Width = 22
	cols[3].Width = usable - cols[0].Width - cols[1].Width - cols[2].Width
	m.table.SetColumns(cols)

	headerHeight := 4
	availableHeight := m.height - headerHeight - lipgloss.Height(statusStyle.Render(""))
	tableHeight := availableHeight * 2 / 5
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetWidth(m.width)
	m.table.SetHeight(tableHeight)

	m.viewport.Width = m.width - detailPaneBorderStyle.GetHorizontalFrameSize()
	m.viewport.Height = max(availableHeight-tableHeight-detailPaneBorderStyle.GetVerticalFrameSize()-1, 3)
	m.updateViewportContent()
	statusStyle = statusStyle.Width(m.width)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	switch m.phase {
	case phaseInput:
		return m.viewInput()
	case phaseScanning:
		return m.viewScanning()
	}
	return m.viewResults()
}

func (m Model) viewInput() string {
	body := titleStyle.Render("a11yscan") + "\n\n" +
		"Scan a URL for accessibility issues\n\n" +
		m.input.View()
	box := popupStyle.Width(64).Render(body)
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box) + "\n" + statusStyle.Render(m.statusMessage)
}

func (m Model) viewScanning() string {
	progress := (m.stage + 1) * 100 / len(stageLabels)
	content := fmt.Sprintf("%s  %s\n\n%s\n\n%d%%",
		m.spinner.View(), stageLabels[m.stage], labelStyle.Render(m.target), progress)
	box := popupStyle.Width(55).Align(lipgloss.Center).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewResults() string {
	rep := m.result.Report
	crit, warn, info := types.Report{Issues: m.result.Shown}.SeverityCounts()

	score := fmt.Sprintf("%d", rep.Score)
	if !m.noColor {
		score = lipgloss.NewStyle().Bold(true).Foreground(report.ScoreColor(rep.Score)).Render(score)
	}
	header := fmt.Sprintf("%s  score %s/100 (%s)  |  %s %d  %s %d  %s %d  |  %d nodes · %d pages · %.1fs",
		titleStyle.Render(m.result.Target), score, report.Grade(rep.Score),
		report.Badge(types.SevCritical, m.noColor), crit,
		report.Badge(types.SevWarning, m.noColor), warn,
		report.Badge(types.SevInfo, m.noColor), info,
		rep.NodeCount, rep.PageCount, rep.ScanDurationSeconds)

	issuesTab, ciTab := tabActiveStyle, tabInactiveStyle
	if m.tab == tabCI {
		issuesTab, ciTab = tabInactiveStyle, tabActiveStyle
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		issuesTab.Render(fmt.Sprintf("Issues (%d)", len(m.result.Shown))),
		ciTab.Render("CI config"))

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(tabs + "\n")
	if m.tab == tabIssues {
		b.WriteString(m.table.View() + "\n")
	} else {
		tpl, _ := ci.Lookup("github")
		b.WriteString(labelStyle.Render(tpl.Path) + "\n")
	}
	b.WriteString(detailPaneBorderStyle.Render(m.viewport.View()) + "\n")
	b.WriteString(statusStyle.Render(m.statusMessage))
	return b.String()
}
