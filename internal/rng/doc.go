// Package rng implements the seeded xorshift source that drives report
// synthesis. A Source is derived from an arbitrary string and yields the same
// sequence of draws for the same string on every run and platform.
package rng
