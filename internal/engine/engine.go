package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/a11yscan/a11yscan/internal/catalog"
	"github.com/a11yscan/a11yscan/internal/ignore"
	"github.com/a11yscan/a11yscan/internal/rng"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoTargets is returned when a batch scan is started without any target.
var ErrNoTargets = errors.New("no targets to scan")

// Config controls a batch scan: which targets, against which catalog, and
// which issues are shown afterwards.
type Config struct {
	Targets []string
	Catalog catalog.Catalog
	Threads int

	// Display filters. They never change the synthesized report itself.
	IncludeRules string // comma-separated template ids or rule names
	ExcludeRules string
	MinSeverity  types.Severity
	Ignore       *ignore.Matcher

	Logger   *zap.Logger
	Progress func(target string)
}

// TargetResult pairs one target with its synthesized report and the issues
// left after display filters.
type TargetResult struct {
	Target        string        `json:"target"`
	ReportID      string        `json:"reportId"`
	CatalogDigest string        `json:"catalogDigest"`
	Seed          uint32        `json:"-"`
	Report        types.Report  `json:"report"`
	Shown         []types.Issue `json:"-"`
}

// Hidden is the number of issues removed by display filters.
func (t TargetResult) Hidden() int { return len(t.Report.Issues) - len(t.Shown) }

// Result contains per-target reports in target order plus batch statistics.
type Result struct {
	Targets     []TargetResult
	Duration    time.Duration
	IssuesTotal int
	IssuesShown int
}

// Shown flattens the displayed issues of every target.
func (r Result) Shown() []types.Issue {
	var out []types.Issue
	for _, t := range r.Targets {
		out = append(out, t.Shown...)
	}
	return out
}

// ReportID derives a stable identifier for a target's report.
func ReportID(target string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(target)).String()
}

// Scan is ScanWithStats without the statistics.
func Scan(ctx context.Context, cfg Config) ([]TargetResult, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Targets, nil
}

// ScanWithStats synthesizes a report per target. Targets run concurrently on
// up to cfg.Threads workers, each with its own random source; results keep
// the order of cfg.Targets.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	if len(cfg.Targets) == 0 {
		return result, ErrNoTargets
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return result, fmt.Errorf("catalog: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	filter := newIssueFilter(cfg)
	digest := cfg.Catalog.Digest()

	started := time.Now()
	out := make([]TargetResult, len(cfg.Targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(threads, len(cfg.Targets)))
	for i, target := range cfg.Targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := rng.New(target)
			rep := synthesize(src, cfg.Catalog)
			out[i] = TargetResult{
				Target:        target,
				ReportID:      ReportID(target),
				CatalogDigest: digest,
				Seed:          src.Seed(),
				Report:        rep,
				Shown:         filter.apply(rep.Issues),
			}
			log.Debug("synthesized report",
				zap.String("target", target),
				zap.Uint32("seed", src.Seed()),
				zap.Int("score", rep.Score),
				zap.Int("issues", len(rep.Issues)),
				zap.Int("shown", len(out[i].Shown)),
			)
			if cfg.Progress != nil {
				cfg.Progress(target)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	result.Targets = out
	result.Duration = time.Since(started)
	for _, t := range out {
		result.IssuesTotal += len(t.Report.Issues)
		result.IssuesShown += len(t.Shown)
	}
	log.Info("scan complete",
		zap.Int("targets", len(out)),
		zap.Int("issues", result.IssuesTotal),
		zap.Int("shown", result.IssuesShown),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}
