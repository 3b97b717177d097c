package types

// Severity is the impact level of an accessibility issue.
type Severity string

const (
	SevCritical Severity = "critical"
	SevWarning  Severity = "warning"
	SevInfo     Severity = "info"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SevCritical, SevWarning, SevInfo:
		return true
	}
	return false
}

// Rank orders severities for thresholds: info=1, warning=2, critical=3, unknown=0.
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 3
	case SevWarning:
		return 2
	case SevInfo:
		return 1
	default:
		return 0
	}
}

// Issue is one generated accessibility issue inside a report. Fields other than
// Line are copied verbatim from the catalog template and the chosen variant.
type Issue struct {
	SequenceID        int      `json:"id" msgpack:"id"`
	TemplateID        string   `json:"template" msgpack:"template"`
	Severity          Severity `json:"severity" msgpack:"severity"`
	Rule              string   `json:"rule" msgpack:"rule"`
	StandardReference string   `json:"wcag" msgpack:"wcag"`
	Description       string   `json:"description" msgpack:"description"`
	Element           string   `json:"element" msgpack:"element"`
	Fix               string   `json:"fix" msgpack:"fix"`
	FilePath          string   `json:"file" msgpack:"file"`
	Line              int      `json:"line" msgpack:"line"`
	Note              string   `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report is the synthesized result for one input string.
type Report struct {
	Score               int     `json:"score" msgpack:"score"`
	Issues              []Issue `json:"issues" msgpack:"issues"`
	NodeCount           int     `json:"nodeCount" msgpack:"nodeCount"`
	ScanDurationSeconds float64 `json:"scanTime" msgpack:"scanTime"`
	PageCount           int     `json:"pageCount" msgpack:"pageCount"`
}

// SeverityCounts tallies issues by severity.
func (r Report) SeverityCounts() (critical, warning, info int) {
	for _, is := range r.Issues {
		switch is.Severity {
		case SevCritical:
			critical++
		case SevWarning:
			warning++
		default:
			info++
		}
	}
	return critical, warning, info
}
