package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

// PrintTable renders one bordered table per target with a severity footer.
func PrintTable(w io.Writer, results []engine.TargetResult, opts PrintOptions) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printHeader(w, r, opts)
		if len(r.Shown) == 0 {
			fmt.Fprintln(w, "No issues found ✅")
			continue
		}
		rows := make([][]string, 0, len(r.Shown))
		for _, is := range r.Shown {
			rows = append(rows, []string{
				strconv.Itoa(is.SequenceID),
				Badge(is.Severity, opts.NoColor),
				is.Rule,
				fmt.Sprintf("%s:%d", is.FilePath, is.Line),
				is.StandardReference,
			})
		}
		table := tablewriter.NewWriter(w)
		table.Header("#", "SEVERITY", "RULE", "LOCATION", "WCAG")
		if err := table.Bulk(rows); err != nil {
			return err
		}
		c, wn, in := countBySeverity(r.Shown)
		table.Footer("", "", "", fmt.Sprintf("critical: %d  warning: %d  info: %d", c, wn, in), "")
		if err := table.Render(); err != nil {
			return err
		}
	}
	printFooter(w, results, opts)
	return nil
}

// PrintText renders issues as plain aligned lines, one per issue.
func PrintText(w io.Writer, results []engine.TargetResult, opts PrintOptions) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printHeader(w, r, opts)
		if len(r.Shown) == 0 {
			fmt.Fprintln(w, "No issues found ✅")
			continue
		}
		maxRule := 8
		for _, is := range r.Shown {
			if l := len(is.Rule); l > maxRule {
				maxRule = l
			}
		}
		for _, is := range r.Shown {
			sev := Badge(is.Severity, opts.NoColor)
			rule := fmt.Sprintf("%-*s", maxRule, is.Rule)
			if !opts.NoColor {
				rule = ruleStyle.Render(rule)
			}
			fmt.Fprintf(w, "%2d. %s %s %s:%d  %s\n", is.SequenceID, sev, rule, is.FilePath, is.Line, is.StandardReference)
		}
	}
	printFooter(w, results, opts)
	return nil
}

func printHeader(w io.Writer, r engine.TargetResult, opts PrintOptions) {
	rep := r.Report
	score := fmt.Sprintf("%d/100", rep.Score)
	if !opts.NoColor {
		score = lipgloss.NewStyle().Bold(true).Foreground(ScoreColor(rep.Score)).Render(score)
	}
	fmt.Fprintf(w, "%s  score %s (%s)\n", r.Target, score, Grade(rep.Score))
	meta := fmt.Sprintf("%d nodes, %d pages, %.1fs", rep.NodeCount, rep.PageCount, rep.ScanDurationSeconds)
	if h := r.Hidden(); h > 0 {
		meta += fmt.Sprintf(", %d hidden", h)
	}
	if !opts.NoColor {
		meta = mutedStyle.Render(meta)
	}
	fmt.Fprintln(w, meta)
}

func printFooter(w io.Writer, results []engine.TargetResult, opts PrintOptions) {
	if opts.Duration <= 0 && len(results) < 2 {
		return
	}
	var c, wn, in int
	for _, r := range results {
		a, b, d := countBySeverity(r.Shown)
		c, wn, in = c+a, wn+b, in+d
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Issues: %d (critical: %d, warning: %d, info: %d)\n", c+wn+in, c, wn, in)
	fmt.Fprintf(w, "Targets scanned: %d\n", len(results))
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}
