package rng

import "math"

const maxState = math.MaxUint32

// Source is a 32-bit xorshift generator. It is not safe for concurrent use;
// construct one per synthesis.
type Source struct {
	seed  uint32
	state uint32
}

// New folds every code point of input into a 32-bit seed
// (acc = acc*31 + cp, wrapping) and returns a Source positioned at that seed.
// The empty string yields seed 0, which is a fixed point of the transform:
// every draw returns 0.
func New(input string) *Source {
	var acc uint32
	for _, r := range input {
		acc = acc*31 + uint32(r)
	}
	return &Source{seed: acc, state: acc}
}

// Seed returns the initial state derived from the input string.
func (s *Source) Seed() uint32 { return s.seed }

// Uint32 advances the state by one xorshift step and returns it. The right
// shift is arithmetic: it runs on the state reinterpreted as int32, so the
// sign bit is copied into the vacated high bits.
func (s *Source) Uint32() uint32 {
	x := s.state
	x ^= x << 13
	x ^= uint32(int32(x) >> 17)
	x ^= x << 5
	s.state = x
	return x
}

// Float64 returns the next draw as state/(2^32-1). The result lies in [0,1].
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / maxState
}

// Intn returns floor(Float64()*n) clamped to [0, n-1]. It panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return scale(s.Float64(), n)
}

// scale maps a draw in [0,1] onto [0, n-1]; a draw of exactly 1 lands on n-1.
func scale(f float64, n int) int {
	v := int(f * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
