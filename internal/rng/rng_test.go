package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Seed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		seed  uint32
	}{
		{name: "empty", input: "", seed: 0},
		{name: "single char", input: "a", seed: 97},
		{name: "two chars", input: "ab", seed: 97*31 + 98},
		{name: "canonical url", input: "https://example.com", seed: 632849614},
		{name: "wraps at 32 bits", input: "https://github.com", seed: 2760872197},
		{name: "astral folds whole code point", input: "\U0001F600", seed: 0x1F600},
		{name: "astral after ascii", input: "a\U0001F600", seed: 97*31 + 0x1F600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.seed, New(tt.input).Seed())
		})
	}
}

func TestFloat64_CanonicalFixture(t *testing.T) {
	src := New("https://example.com")
	assert.Equal(t, 0.5665677559018526, src.Float64())
}

func TestFloat64_DrawSequences(t *testing.T) {
	tests := []struct {
		input string
		draws []float64
	}{
		{
			input: "https://example.com",
			draws: []float64{0.5665677559018526, 0.7053258425335693, 0.8168194766195537, 0.7648341906640759, 0.5563434463824014, 0.7952388897061439},
		},
		{
			input: "https://github.com",
			draws: []float64{0.5128831906506985, 0.12714398399161733, 0.6603806136782236, 0.5569108255572875, 0.745568070035793, 0.9015091834360522},
		},
		{
			input: "https://a11y.dev",
			draws: []float64{0.8042686245879784, 0.8173986216581889, 0.9869947454396157, 0.8749369973956926, 0.12765795344665135, 0.21662016404248313},
		},
		{
			input: "https://example.org",
			draws: []float64{0.2976065907388941, 0.9987266124223189, 0.6713406328743651, 0.6411314636098993, 0.7580786675117162, 0.4072258538583354},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			src := New(tt.input)
			for i, want := range tt.draws {
				require.Equal(t, want, src.Float64(), "draw %d", i+1)
			}
		})
	}
}

func TestUint32_ShiftCopiesSignBit(t *testing.T) {
	// After x ^= x<<13 the high bit is set, so the right shift must fill
	// with ones.
	src := &Source{state: 0x80000000}
	assert.Equal(t, uint32(0x8007c000), src.Uint32())
}

func TestFloat64_SameInputSameSequence(t *testing.T) {
	a := New("https://a11y.dev")
	b := New("https://a11y.dev")
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestFloat64_DifferentInputsDiverge(t *testing.T) {
	a := New("https://example.com")
	b := New("https://example.org")
	assert.NotEqual(t, a.Float64(), b.Float64())
}

func TestFloat64_ZeroSeedIsFixedPoint(t *testing.T) {
	src := New("")
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0.0, src.Float64())
	}
}

func TestFloat64_Range(t *testing.T) {
	src := New("range check")
	for i := 0; i < 10000; i++ {
		v := src.Float64()
		if v < 0 || v > 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

func TestScale_ClampsSaturatedDraw(t *testing.T) {
	assert.Equal(t, 61, scale(1.0, 62))
	assert.Equal(t, 0, scale(1.0, 1))
	assert.Equal(t, 0, scale(0, 62))
	assert.Equal(t, 35, scale(0.5665677559018526, 62))
}

func TestIntn_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { New("x").Intn(0) })
}
