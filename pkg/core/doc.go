// Package core provides a small, stable facade over a11yscan's internal
// synthesizer for external integrations. It re-exports a narrow API surface
// so other tools can depend on a stable import path without importing
// internal packages.
//
// Example:
//
//	rep, err := core.SynthesizeReport("https://example.com", core.DefaultCatalog())
//	if err != nil { /* handle */ }
//	_ = core.MarshalReport(os.Stdout, rep)
package core
