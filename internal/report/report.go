package report

import (
	"time"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/types"
)

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

// Grade maps a score to its human label.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 50:
		return "Needs work"
	default:
		return "Poor"
	}
}

// ShouldFail reports whether any issue meets the fail-on threshold.
// Unknown thresholds fall back to "warning"; "none" never fails.
func ShouldFail(issues []types.Issue, failOn string) bool {
	if failOn == "none" {
		return false
	}
	th := types.Severity(failOn).Rank()
	if th == 0 {
		th = types.SevWarning.Rank()
	}
	for _, is := range issues {
		if is.Severity.Rank() >= th {
			return true
		}
	}
	return false
}

// Envelope is the serialized form of one target: the report with display
// filters applied plus identifying metadata.
type Envelope struct {
	Target        string `json:"target" msgpack:"target"`
	ReportID      string `json:"reportId" msgpack:"reportId"`
	CatalogDigest string `json:"catalogDigest" msgpack:"catalogDigest"`
	Grade         string `json:"grade" msgpack:"grade"`
	types.Report
	Hidden int `json:"hidden,omitempty" msgpack:"hidden,omitempty"`
}

func envelopes(results []engine.TargetResult) []Envelope {
	out := make([]Envelope, 0, len(results))
	for _, r := range results {
		rep := r.Report
		rep.Issues = r.Shown
		if rep.Issues == nil {
			rep.Issues = []types.Issue{}
		}
		out = append(out, Envelope{
			Target:        r.Target,
			ReportID:      r.ReportID,
			CatalogDigest: r.CatalogDigest,
			Grade:         Grade(r.Report.Score),
			Report:        rep,
			Hidden:        r.Hidden(),
		})
	}
	return out
}

func countBySeverity(issues []types.Issue) (critical, warning, info int) {
	return types.Report{Issues: issues}.SeverityCounts()
}
