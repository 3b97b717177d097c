package core

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/a11yscan/a11yscan/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeReport_Smoke(t *testing.T) {
	rep, err := SynthesizeReport("https://example.com", DefaultCatalog())
	if err != nil {
		t.Fatalf("SynthesizeReport error: %v", err)
	}
	if rep.Score != 70 || len(rep.Issues) != 4 {
		t.Fatalf("unexpected report: score=%d issues=%d", rep.Score, len(rep.Issues))
	}
}

func TestSynthesizeReport_EmptyCatalog(t *testing.T) {
	_, err := SynthesizeReport("https://example.com", nil)
	if !errors.Is(err, catalog.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestDefaultCatalog_IsACopy(t *testing.T) {
	a := DefaultCatalog()
	a[0].Variants[0].Fix = "mutated"
	b := DefaultCatalog()
	assert.NotEqual(t, "mutated", b[0].Variants[0].Fix)
}

func TestMarshalReport_RoundTrip(t *testing.T) {
	rep, err := SynthesizeReport("https://github.com", DefaultCatalog())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, MarshalReport(&buf, rep))
	got, err := UnmarshalReport(&buf)
	require.NoError(t, err)
	assert.Equal(t, rep, got)
}

func TestScan_MatchesSynthesize(t *testing.T) {
	res, err := Scan(context.Background(), BatchConfig{
		Targets: []string{"https://example.com"},
		Catalog: catalog.Default(),
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	rep, err := SynthesizeReport("https://example.com", DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, rep, res[0].Report)
}
