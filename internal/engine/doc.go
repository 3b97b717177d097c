// Package engine synthesizes accessibility reports. Synthesize is the pure
// core: one input string and one catalog in, one reproducible report out.
// ScanWithStats runs it for a batch of targets and applies display filters.
package engine
