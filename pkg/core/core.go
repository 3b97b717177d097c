package core

import (
	"context"

	"github.com/a11yscan/a11yscan/internal/catalog"
	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Template = catalog.Template
type Variant = catalog.Variant
type Issue = types.Issue
type Report = types.Report
type Severity = types.Severity
type BatchConfig = engine.Config
type TargetResult = engine.TargetResult

const (
	SevCritical = types.SevCritical
	SevWarning  = types.SevWarning
	SevInfo     = types.SevInfo
)

// SynthesizeReport produces the deterministic report for input against the
// given templates. The same input and templates always yield the same report.
func SynthesizeReport(input string, templates []Template) (Report, error) {
	return engine.Synthesize(input, catalog.Catalog{Templates: templates})
}

// DefaultCatalog returns a fresh copy of the built-in issue templates.
func DefaultCatalog() []Template { return catalog.Default().Templates }

// Scan synthesizes reports for several targets concurrently.
func Scan(ctx context.Context, cfg BatchConfig) ([]TargetResult, error) {
	return engine.Scan(ctx, cfg)
}
