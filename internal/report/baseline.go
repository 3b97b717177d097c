package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/types"
	xxhash "github.com/cespare/xxhash/v2"
)

// DefaultBaselineFile is where `baseline update` writes when no path is given.
const DefaultBaselineFile = "a11yscan.baseline.json"

type Baseline struct {
	Items map[string]bool `json:"items"`
}

// LoadBaseline reads a baseline file. A missing file yields an empty baseline
// together with the os error so callers can decide whether that matters.
func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(f, &b); err != nil {
		return Baseline{Items: map[string]bool{}}, fmt.Errorf("%s: %w", path, err)
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

// SaveBaseline accepts every issue currently shown for results.
func SaveBaseline(path string, results []engine.TargetResult) error {
	b := Baseline{Items: map[string]bool{}}
	for _, r := range results {
		for _, is := range r.Shown {
			b.Items[Key(r.Target, is)] = true
		}
	}
	return writeBaseline(path, b)
}

// AddToBaseline accepts a single issue into the baseline file at path,
// creating the file when it does not exist yet.
func AddToBaseline(path, target string, is types.Issue) error {
	base, err := LoadBaseline(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	base.Items[Key(target, is)] = true
	return writeBaseline(path, base)
}

func writeBaseline(path string, b Baseline) error {
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0644)
}

// FilterNew drops baselined issues from each result's shown set.
func FilterNew(results []engine.TargetResult, base Baseline) []engine.TargetResult {
	out := make([]engine.TargetResult, len(results))
	for i, r := range results {
		var shown []types.Issue
		for _, is := range r.Shown {
			if !base.Items[Key(r.Target, is)] {
				shown = append(shown, is)
			}
		}
		r.Shown = shown
		out[i] = r
	}
	return out
}

// Key identifies an issue across scans of the same target. The line number
// is not part of the key. Each field is length-prefixed so no separator
// inside a field can shift it into the next one.
func Key(target string, is types.Issue) string {
	h := xxhash.New()
	for _, f := range []string{target, is.TemplateID, is.FilePath, is.Element} {
		_, _ = h.WriteString(strconv.Itoa(len(f)))
		_, _ = h.WriteString(":")
		_, _ = h.WriteString(f)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
