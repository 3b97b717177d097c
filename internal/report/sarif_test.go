package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/a11yscan/a11yscan/internal/types"
)

type sarifDoc struct {
	Version string `json:"version"`
	Runs    []struct {
		Properties        map[string]any `json:"properties"`
		AutomationDetails struct {
			GUID string `json:"guid"`
		} `json:"automationDetails"`
		Tool struct {
			Driver struct {
				Name    string `json:"name"`
				Version string `json:"version"`
				Rules   []struct {
					ID string `json:"id"`
				} `json:"rules"`
			} `json:"driver"`
		} `json:"tool"`
		Results []struct {
			RuleID    string `json:"ruleId"`
			RuleIndex int    `json:"ruleIndex"`
			Level     string `json:"level"`
			Locations []struct {
				PhysicalLocation struct {
					ArtifactLocation struct {
						URI string `json:"uri"`
					} `json:"artifactLocation"`
					Region struct {
						StartLine int `json:"startLine"`
						Snippet   struct {
							Text string `json:"text"`
						} `json:"snippet"`
					} `json:"region"`
				} `json:"physicalLocation"`
			} `json:"locations"`
		} `json:"results"`
	} `json:"runs"`
}

func TestWriteSARIF_RunPerTarget(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, sampleResults(), "1.2.3"); err != nil {
		t.Fatalf("WriteSARIF: %v", err)
	}
	var doc sarifDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v; body=%s", err, buf.String())
	}
	if doc.Version != "2.1.0" {
		t.Fatalf("version = %q", doc.Version)
	}
	if len(doc.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(doc.Runs))
	}
	run := doc.Runs[0]
	if run.Tool.Driver.Name != "a11yscan" || run.Tool.Driver.Version != "1.2.3" {
		t.Fatalf("unexpected driver: %+v", run.Tool.Driver)
	}
	if run.AutomationDetails.GUID != sampleResults()[0].ReportID {
		t.Fatalf("automationDetails.guid = %q", run.AutomationDetails.GUID)
	}
	if run.Properties["score"].(float64) != 70 {
		t.Fatalf("score property = %v", run.Properties["score"])
	}
	if len(run.Tool.Driver.Rules) != 3 || len(run.Results) != 3 {
		t.Fatalf("rules=%d results=%d", len(run.Tool.Driver.Rules), len(run.Results))
	}
	levels := []string{"error", "warning", "note"}
	for i, r := range run.Results {
		if run.Tool.Driver.Rules[r.RuleIndex].ID != r.RuleID {
			t.Fatalf("result %d: ruleIndex %d does not point at %s", i, r.RuleIndex, r.RuleID)
		}
		if r.Level != levels[i] {
			t.Fatalf("result %d: level %q, want %q", i, r.Level, levels[i])
		}
	}
	loc := run.Results[0].Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "components/Hero.jsx" || loc.Region.StartLine != 40 {
		t.Fatalf("unexpected location: %+v", loc)
	}
	if loc.Region.Snippet.Text != `<img src="/hero.png">` {
		t.Fatalf("snippet = %q", loc.Region.Snippet.Text)
	}
}

func TestWriteSARIF_SharedRuleIndex(t *testing.T) {
	res := sampleResults()
	dup := res[0].Shown[0]
	dup.SequenceID = 4
	dup.Line = 77
	res[0].Shown = []types.Issue{res[0].Shown[0], dup}

	var buf bytes.Buffer
	if err := WriteSARIF(&buf, res, "dev"); err != nil {
		t.Fatalf("WriteSARIF: %v", err)
	}
	var doc sarifDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	run := doc.Runs[0]
	if len(run.Tool.Driver.Rules) != 1 {
		t.Fatalf("expected rules deduplicated, got %d", len(run.Tool.Driver.Rules))
	}
	if run.Results[0].RuleIndex != 0 || run.Results[1].RuleIndex != 0 {
		t.Fatalf("expected both results on rule 0")
	}
}

func TestWriteSARIF_NoTargets(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, nil, "dev"); err != nil {
		t.Fatalf("WriteSARIF: %v", err)
	}
	var doc sarifDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Runs == nil || len(doc.Runs) != 0 {
		t.Fatalf("expected empty runs array, got %#v", doc.Runs)
	}
}
