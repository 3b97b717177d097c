package report

import (
	"fmt"
	"path"
	"strings"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/charmbracelet/glamour"
)

// Markdown renders scan results as a Markdown report suitable for a PR comment.
func Markdown(results []engine.TargetResult) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		renderTarget(&b, r)
	}
	return b.String()
}

func renderTarget(b *strings.Builder, r engine.TargetResult) {
	rep := r.Report
	c, w, in := countBySeverity(r.Shown)

	fmt.Fprintf(b, "# Accessibility Report: %s\n\n", r.Target)
	fmt.Fprintf(b, "**Score:** %d / 100 (%s)\n", rep.Score, Grade(rep.Score))
	fmt.Fprintf(b, "**Issues:** %d critical, %d warnings, %d info\n", c, w, in)
	fmt.Fprintf(b, "**Scanned:** %d nodes across %d pages in %.1fs\n\n", rep.NodeCount, rep.PageCount, rep.ScanDurationSeconds)

	sections := []struct {
		title string
		sev   types.Severity
	}{
		{"Critical Issues", types.SevCritical},
		{"Warnings", types.SevWarning},
		{"Info", types.SevInfo},
	}
	for _, s := range sections {
		issues := filterIssues(r.Shown, s.sev)
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(b, "## %s\n\n", s.title)
		for _, is := range issues {
			renderIssue(b, is)
		}
	}

	if len(r.Shown) == 0 {
		b.WriteString("No issues found.\n\n")
	}
	if h := r.Hidden(); h > 0 {
		fmt.Fprintf(b, "_%d issue(s) hidden by filters or baseline._\n\n", h)
	}
	fmt.Fprintf(b, "<sub>report %s · catalog %s</sub>\n\n", r.ReportID, r.CatalogDigest)
}

func renderIssue(b *strings.Builder, is types.Issue) {
	lang := fenceLang(is.FilePath)
	fmt.Fprintf(b, "### %d. `%s` (%s:%d)\n\n", is.SequenceID, is.Rule, is.FilePath, is.Line)
	fmt.Fprintf(b, "**Reference:** %s\n\n", is.StandardReference)
	fmt.Fprintf(b, "%s\n\n", is.Description)
	if is.Note != "" {
		fmt.Fprintf(b, "> ⚠ %s\n\n", is.Note)
	}
	fmt.Fprintf(b, "**Before**\n\n```%s\n%s\n```\n\n", lang, is.Element)
	fmt.Fprintf(b, "**Suggested fix**\n\n```%s\n%s\n```\n\n", lang, is.Fix)
}

func filterIssues(issues []types.Issue, sev types.Severity) []types.Issue {
	var out []types.Issue
	for _, is := range issues {
		if is.Severity == sev {
			out = append(out, is)
		}
	}
	return out
}

func fenceLang(file string) string {
	switch path.Ext(file) {
	case ".css":
		return "css"
	case ".jsx", ".tsx":
		return "jsx"
	case ".html", ".htm":
		return "html"
	default:
		return ""
	}
}

// RenderMarkdown renders md for a terminal of the given width.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(md)
}
