package engine

import (
	"math"
	"sort"

	"github.com/a11yscan/a11yscan/internal/catalog"
	"github.com/a11yscan/a11yscan/internal/rng"
	"github.com/a11yscan/a11yscan/internal/types"
)

// Score, node and page ranges. Each draw is Intn(span)+min.
const (
	scoreMin, scoreSpan = 35, 62
	nodeMin, nodeSpan   = 80, 400
	pageMin, pageSpan   = 1, 8
	lineJitter          = 20
	durationMin         = 0.4
	durationSpan        = 2.8
)

// Synthesize builds the report for input from cat. The catalog is validated
// first; an empty or malformed catalog is an error, never an empty report.
// cat is only read.
func Synthesize(input string, cat catalog.Catalog) (types.Report, error) {
	if err := cat.Validate(); err != nil {
		return types.Report{}, err
	}
	return synthesize(rng.New(input), cat), nil
}

// synthesize consumes draws from src in a fixed order. Reordering any step
// changes every report.
func synthesize(src *rng.Source, cat catalog.Catalog) types.Report {
	score := src.Intn(scoreSpan) + scoreMin
	count := issueCount(src, score)

	picked := shuffle(src, cat.Templates)
	if count > len(picked) {
		count = len(picked)
	}
	picked = picked[:count]

	issues := make([]types.Issue, 0, count)
	for i, t := range picked {
		v := t.Variants[src.Intn(len(t.Variants))]
		offset := src.Intn(2*lineJitter+1) - lineJitter
		issues = append(issues, types.Issue{
			SequenceID:        i + 1,
			TemplateID:        t.ID,
			Severity:          t.Severity,
			Rule:              t.Rule,
			StandardReference: t.StandardReference,
			Description:       t.Description,
			Element:           v.Element,
			Fix:               v.Fix,
			FilePath:          v.FilePath,
			Line:              max(1, v.Line+offset),
			Note:              v.Note,
		})
	}

	nodes := src.Intn(nodeSpan) + nodeMin
	// The conversion keeps the multiply from fusing with the add on FMA
	// platforms, which would change the rounded value.
	duration := math.Round((float64(src.Float64()*durationSpan)+durationMin)*10) / 10
	pages := src.Intn(pageSpan) + pageMin

	return types.Report{
		Score:               score,
		Issues:              issues,
		NodeCount:           nodes,
		ScanDurationSeconds: duration,
		PageCount:           pages,
	}
}

// issueCount draws how many issues to report; better scores get fewer.
func issueCount(src *rng.Source, score int) int {
	switch {
	case score >= 85:
		return src.Intn(2) + 1
	case score >= 65:
		return src.Intn(3) + 2
	default:
		return src.Intn(4) + 3
	}
}

// shuffle draws one key per template in catalog order and returns the
// templates stably sorted by key. It consumes exactly len(ts) draws and returns
// a new slice; ts is untouched.
func shuffle(src *rng.Source, ts []catalog.Template) []catalog.Template {
	type keyed struct {
		key float64
		t   catalog.Template
	}
	ks := make([]keyed, len(ts))
	for i, t := range ts {
		ks[i] = keyed{key: src.Float64(), t: t}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	out := make([]catalog.Template, len(ks))
	for i, k := range ks {
		out[i] = k.t
	}
	return out
}
