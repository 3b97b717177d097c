package report

import (
	"encoding/json"
	"io"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/types"
)

const sarifSchema = "https://json.schemastore.org/sarif-2.1.0.json"

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool              sarifTool       `json:"tool"`
	AutomationDetails sarifAutomation `json:"automationDetails"`
	Results           []sarifResult   `json:"results"`
	Properties        map[string]any  `json:"properties,omitempty"`
}

type sarifAutomation struct {
	ID   string `json:"id"`
	GUID string `json:"guid"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ShortDescription sarifMessage   `json:"shortDescription"`
	Properties       map[string]any `json:"properties,omitempty"`
}

type sarifResult struct {
	RuleID     string         `json:"ruleId"`
	RuleIndex  int            `json:"ruleIndex"`
	Level      string         `json:"level"`
	Message    sarifMessage   `json:"message"`
	Locations  []sarifLoc     `json:"locations"`
	Properties map[string]any `json:"properties,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int           `json:"startLine"`
	Snippet   *sarifMessage `json:"snippet,omitempty"`
}

func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return "error"
	case types.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF writes one SARIF 2.1.0 run per target to the provided writer.
func WriteSARIF(w io.Writer, results []engine.TargetResult, version string) error {
	doc := sarif{Schema: sarifSchema, Version: "2.1.0", Runs: []sarifRun{}}
	for _, r := range results {
		run := sarifRun{
			Tool:              sarifTool{Driver: sarifDriver{Name: "a11yscan", Version: version, Rules: []sarifRule{}}},
			AutomationDetails: sarifAutomation{ID: "a11yscan/" + r.Target, GUID: r.ReportID},
			Results:           []sarifResult{},
			Properties: map[string]any{
				"target":        r.Target,
				"score":         r.Report.Score,
				"nodeCount":     r.Report.NodeCount,
				"pageCount":     r.Report.PageCount,
				"scanTime":      r.Report.ScanDurationSeconds,
				"catalogDigest": r.CatalogDigest,
			},
		}
		index := map[string]int{}
		for _, is := range r.Shown {
			idx, ok := index[is.TemplateID]
			if !ok {
				idx = len(run.Tool.Driver.Rules)
				index[is.TemplateID] = idx
				run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
					ID:               is.TemplateID,
					Name:             is.Rule,
					ShortDescription: sarifMessage{Text: is.Description},
					Properties:       map[string]any{"wcag": is.StandardReference, "severity": string(is.Severity)},
				})
			}
			props := map[string]any{"fix": is.Fix}
			if is.Note != "" {
				props["note"] = is.Note
			}
			run.Results = append(run.Results, sarifResult{
				RuleID:    is.TemplateID,
				RuleIndex: idx,
				Level:     sevToLevel(is.Severity),
				Message:   sarifMessage{Text: is.Description},
				Locations: []sarifLoc{{
					PhysicalLocation: sarifPhys{
						ArtifactLocation: sarifArt{URI: is.FilePath},
						Region:           sarifRegion{StartLine: is.Line, Snippet: &sarifMessage{Text: is.Element}},
					},
				}},
				Properties: props,
			})
		}
		doc.Runs = append(doc.Runs, run)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
