package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/a11yscan/a11yscan/internal/catalog"
	"github.com/a11yscan/a11yscan/internal/ignore"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func targets(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://batch.example/%d", i)
	}
	return out
}

func TestScanWithStats_PreservesOrderAndMatchesSynthesize(t *testing.T) {
	cat := catalog.Default()
	ts := targets(40)
	res, err := ScanWithStats(context.Background(), Config{Targets: ts, Catalog: cat, Threads: 8})
	require.NoError(t, err)
	require.Len(t, res.Targets, len(ts))

	total := 0
	for i, tr := range res.Targets {
		assert.Equal(t, ts[i], tr.Target)
		want, err := Synthesize(ts[i], cat)
		require.NoError(t, err)
		assert.Equal(t, want, tr.Report)
		assert.Equal(t, tr.Report.Issues, tr.Shown)
		assert.Equal(t, cat.Digest(), tr.CatalogDigest)
		assert.Equal(t, ReportID(ts[i]), tr.ReportID)
		total += len(tr.Report.Issues)
	}
	assert.Equal(t, total, res.IssuesTotal)
	assert.Equal(t, total, res.IssuesShown)
	assert.Len(t, res.Shown(), total)
}

func TestScanWithStats_Errors(t *testing.T) {
	_, err := ScanWithStats(context.Background(), Config{Catalog: catalog.Default()})
	assert.ErrorIs(t, err, ErrNoTargets)

	_, err = ScanWithStats(context.Background(), Config{Targets: []string{"x"}})
	assert.ErrorIs(t, err, catalog.ErrEmpty)
}

func TestScanWithStats_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScanWithStats(ctx, Config{Targets: targets(5), Catalog: catalog.Default(), Threads: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanWithStats_Progress(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	ts := targets(12)
	_, err := ScanWithStats(context.Background(), Config{
		Targets: ts,
		Catalog: catalog.Default(),
		Threads: 3,
		Progress: func(target string) {
			mu.Lock()
			seen[target] = true
			mu.Unlock()
		},
	})
	require.NoError(t, err)
	assert.Len(t, seen, len(ts))
}

func TestScanWithStats_Filters(t *testing.T) {
	cat := catalog.Default()
	ts := targets(60)

	tests := []struct {
		name  string
		cfg   func(*Config)
		check func(t *testing.T, is types.Issue)
	}{
		{
			name: "min severity",
			cfg:  func(c *Config) { c.MinSeverity = types.SevCritical },
			check: func(t *testing.T, is types.Issue) {
				assert.Equal(t, types.SevCritical, is.Severity)
			},
		},
		{
			name: "include by rule name",
			cfg:  func(c *Config) { c.IncludeRules = "html-has-lang, label" },
			check: func(t *testing.T, is types.Issue) {
				assert.Contains(t, []string{"html-lang", "label"}, is.TemplateID)
			},
		},
		{
			name: "exclude by template id",
			cfg:  func(c *Config) { c.ExcludeRules = "img-alt,button-name" },
			check: func(t *testing.T, is types.Issue) {
				assert.NotContains(t, []string{"img-alt", "button-name"}, is.TemplateID)
			},
		},
		{
			name: "ignore globs",
			cfg: func(c *Config) {
				m, err := ignore.Parse(strings.NewReader("components/\n"))
				require.NoError(t, err)
				c.Ignore = m
			},
			check: func(t *testing.T, is types.Issue) {
				assert.False(t, strings.HasPrefix(is.FilePath, "components/"), is.FilePath)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Targets: ts, Catalog: cat}
			tt.cfg(&cfg)
			res, err := ScanWithStats(context.Background(), cfg)
			require.NoError(t, err)
			assert.Less(t, res.IssuesShown, res.IssuesTotal)
			for _, tr := range res.Targets {
				want, err := Synthesize(tr.Target, cat)
				require.NoError(t, err)
				assert.Equal(t, want, tr.Report, "filters must not alter the report")
				assert.Equal(t, len(tr.Report.Issues)-len(tr.Shown), tr.Hidden())
				for _, is := range tr.Shown {
					tt.check(t, is)
				}
			}
		})
	}
}

func TestReportID_Deterministic(t *testing.T) {
	assert.Equal(t, ReportID("https://example.com"), ReportID("https://example.com"))
	assert.NotEqual(t, ReportID("https://example.com"), ReportID("https://example.org"))
	assert.Len(t, ReportID(""), 36)
}
