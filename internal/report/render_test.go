package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIssues() []types.Issue {
	return []types.Issue{
		{
			SequenceID: 1, TemplateID: "img-alt", Severity: types.SevCritical, Rule: "image-alt",
			StandardReference: "WCAG 1.1.1 (A)", Description: "Images must have alternate text.",
			Element: `<img src="/hero.png">`, Fix: `<img src="/hero.png" alt="Hero">`,
			FilePath: "components/Hero.jsx", Line: 40,
		},
		{
			SequenceID: 2, TemplateID: "color-contrast", Severity: types.SevWarning, Rule: "color-contrast",
			StandardReference: "WCAG 1.4.3 (AA)", Description: "Text must have sufficient contrast.",
			Element: ".muted { color: #999; }", Fix: ".muted { color: #595959; }",
			FilePath: "styles/globals.css", Line: 12, Note: "Contrast ratio 2.8:1",
		},
		{
			SequenceID: 3, TemplateID: "html-lang", Severity: types.SevInfo, Rule: "html-has-lang",
			StandardReference: "WCAG 3.1.1 (A)", Description: "The html element must have a lang attribute.",
			Element: "<html>", Fix: `<html lang="en">`, FilePath: "pages/_document.jsx", Line: 4,
		},
	}
}

func sampleResults() []engine.TargetResult {
	issues := sampleIssues()
	return []engine.TargetResult{{
		Target:        "https://example.com",
		ReportID:      engine.ReportID("https://example.com"),
		CatalogDigest: "00000000deadbeef",
		Report:        types.Report{Score: 70, Issues: issues, NodeCount: 383, ScanDurationSeconds: 2.2, PageCount: 8},
		Shown:         issues,
	}}
}

func TestGrade(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{96, "Excellent"}, {90, "Excellent"}, {89, "Good"}, {75, "Good"},
		{74, "Needs work"}, {50, "Needs work"}, {49, "Poor"}, {35, "Poor"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Grade(c.score), "score %d", c.score)
	}
}

func TestShouldFail(t *testing.T) {
	warnOnly := []types.Issue{{Severity: types.SevWarning}}
	infoOnly := []types.Issue{{Severity: types.SevInfo}}
	cases := []struct {
		name   string
		issues []types.Issue
		failOn string
		want   bool
	}{
		{"default threshold is warning", warnOnly, "", true},
		{"info below default", infoOnly, "", false},
		{"critical threshold ignores warning", warnOnly, "critical", false},
		{"info threshold", infoOnly, "info", true},
		{"none never fails", sampleIssues(), "none", false},
		{"unknown falls back to warning", warnOnly, "bogus", true},
		{"no issues", nil, "info", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ShouldFail(c.issues, c.failOn))
		})
	}
}

func TestPrintText_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResults()
	res[0].Shown = nil
	require.NoError(t, PrintText(&buf, res, PrintOptions{NoColor: true, Duration: 1200 * time.Millisecond}))
	out := buf.String()
	if !strings.Contains(out, "No issues found") {
		t.Fatalf("expected friendly no-issues message; got: %q", out)
	}
	if !strings.Contains(out, "3 hidden") {
		t.Fatalf("expected hidden count; got: %q", out)
	}
	if !strings.Contains(out, "Scan duration: 1.20s") {
		t.Fatalf("expected footer with duration; got: %q", out)
	}
}

func TestPrintText_WithIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintText(&buf, sampleResults(), PrintOptions{NoColor: true}))
	out := buf.String()
	assert.Contains(t, out, "https://example.com  score 70/100 (Needs work)")
	assert.Contains(t, out, "383 nodes, 8 pages, 2.2s")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "components/Hero.jsx:40")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes with NoColor")
}

func TestPrintTable_WithIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, sampleResults(), PrintOptions{NoColor: true}))
	out := buf.String()
	for _, want := range []string{"RULE", "LOCATION", "image-alt", "styles/globals.css:12"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output; got:\n%s", want, out)
		}
	}
	assert.Contains(t, strings.ToLower(out), "critical: 1", "footer counts")
}

func TestPrintTable_MultipleTargetsFooter(t *testing.T) {
	res := append(sampleResults(), sampleResults()...)
	res[1].Target = "https://example.org"
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, res, PrintOptions{NoColor: true}))
	out := buf.String()
	assert.Contains(t, out, "Issues: 6 (critical: 2, warning: 2, info: 2)")
	assert.Contains(t, out, "Targets scanned: 2")
}

func TestWriteJSON_Envelope(t *testing.T) {
	res := sampleResults()
	res[0].Shown = res[0].Shown[:1]
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	env := got[0]
	assert.Equal(t, "https://example.com", env["target"])
	assert.Equal(t, engine.ReportID("https://example.com"), env["reportId"])
	assert.Equal(t, "Needs work", env["grade"])
	assert.EqualValues(t, 70, env["score"])
	assert.EqualValues(t, 383, env["nodeCount"])
	assert.EqualValues(t, 2.2, env["scanTime"])
	assert.EqualValues(t, 8, env["pageCount"])
	assert.EqualValues(t, 2, env["hidden"])
	issues, ok := env["issues"].([]any)
	require.True(t, ok)
	assert.Len(t, issues, 1)
}

func TestWriteJSON_EmptyIssuesIsArray(t *testing.T) {
	res := sampleResults()
	res[0].Shown = nil
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))
	assert.Contains(t, buf.String(), `"issues": []`)
}

func TestMsgpack_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMsgpack(&buf, sampleResults()))
	got, err := ReadMsgpack(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com", got[0].Target)
	assert.Equal(t, 70, got[0].Score)
	assert.Equal(t, sampleIssues(), got[0].Issues)
}

func TestMarkdown_Sections(t *testing.T) {
	md := Markdown(sampleResults())
	for _, want := range []string{
		"# Accessibility Report: https://example.com",
		"**Score:** 70 / 100 (Needs work)",
		"**Issues:** 1 critical, 1 warnings, 1 info",
		"## Critical Issues",
		"## Warnings",
		"## Info",
		"```css\n.muted { color: #595959; }\n```",
		"> ⚠ Contrast ratio 2.8:1",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("missing %q in markdown:\n%s", want, md)
		}
	}
	if strings.Index(md, "## Critical Issues") > strings.Index(md, "## Warnings") {
		t.Fatalf("critical section must come first")
	}
}

func TestMarkdown_NoIssues(t *testing.T) {
	res := sampleResults()
	res[0].Shown = nil
	md := Markdown(res)
	assert.Contains(t, md, "No issues found.")
	assert.Contains(t, md, "_3 issue(s) hidden by filters or baseline._")
	assert.NotContains(t, md, "## Critical Issues")
}

func TestHighlight_ReturnsCodeContent(t *testing.T) {
	code := `<button onClick={close}>×</button>`
	out := Highlight(code, "components/Modal.jsx")
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "button")
}
