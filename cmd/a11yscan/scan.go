package a11yscan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/a11yscan/a11yscan/internal/config"
	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/ignore"
	"github.com/a11yscan/a11yscan/internal/report"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagThreads     int
	flagRules       string
	flagSkipRules   string
	flagMinSeverity string
	flagBaseline    string
	flagIgnoreFile  string
	flagPretty      bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan <url>...",
		Short: "Scan one or more URLs and report accessibility issues",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&flagRules, "rules", "", "only show these templates or rules (comma-separated)")
	cmd.Flags().StringVar(&flagSkipRules, "skip-rules", "", "hide these templates or rules (comma-separated)")
	cmd.Flags().StringVar(&flagMinSeverity, "min-severity", "", "hide issues below: info|warning|critical")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "baseline file (default "+report.DefaultBaselineFile+")")
	cmd.Flags().StringVar(&flagIgnoreFile, "ignore-file", "", "ignore file with path globs (default "+ignore.DefaultFile+")")
	cmd.Flags().BoolVar(&flagPretty, "pretty", false, "render markdown output for the terminal")
}

// scanSetup is the resolved configuration shared by scan-like commands.
type scanSetup struct {
	cfg      engine.Config
	format   string
	failOn   string
	noColor  bool
	baseline string
}

func resolveScan(targets []string, lcfg, gcfg config.FileConfig) (scanSetup, error) {
	var s scanSetup
	cat, err := loadCatalog(pickString(flagCatalog, lcfg.Catalog, gcfg.Catalog))
	if err != nil {
		return s, err
	}
	format, err := resolveFormat(lcfg, gcfg)
	if err != nil {
		return s, err
	}
	sev := types.Severity(pickString(flagMinSeverity, lcfg.MinSeverity, gcfg.MinSeverity))
	if sev != "" && !sev.Valid() {
		return s, fmt.Errorf("unknown --min-severity %q", sev)
	}
	ignorePath := pickString(flagIgnoreFile, lcfg.IgnoreFile, gcfg.IgnoreFile)
	if ignorePath == "" {
		ignorePath = ignore.DefaultFile
	}
	matcher, err := ignore.Load(ignorePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("ignore file: %w", err)
	}
	s.baseline = pickString(flagBaseline, lcfg.Baseline, gcfg.Baseline)
	if s.baseline == "" {
		s.baseline = report.DefaultBaselineFile
	}
	s.format = format
	s.failOn = pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn)
	s.noColor = colorDisabled(lcfg, gcfg)
	s.cfg = engine.Config{
		Targets:      targets,
		Catalog:      cat,
		Threads:      pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		IncludeRules: pickString(flagRules, lcfg.Rules, gcfg.Rules),
		ExcludeRules: pickString(flagSkipRules, lcfg.SkipRules, gcfg.SkipRules),
		MinSeverity:  sev,
		Ignore:       matcher,
		Logger:       logger,
	}
	return s, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	lcfg, gcfg := loadConfigs()
	s, err := resolveScan(args, lcfg, gcfg)
	if err != nil {
		return err
	}

	human := s.format == "table" || s.format == "text"
	progress := human && isTerminal(os.Stderr) && len(args) > 1
	if progress {
		var done atomic.Int64
		total := len(args)
		s.cfg.Progress = func(string) {
			n := done.Add(1)
			_, _ = fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", n, total, float64(n)/float64(total)*100)
		}
	}
	res, err := engine.ScanWithStats(cmd.Context(), s.cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if progress {
		_, _ = fmt.Fprintln(os.Stderr)
	}

	results := res.Targets
	base, err := report.LoadBaseline(s.baseline)
	switch {
	case err == nil:
		results = report.FilterNew(results, base)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("baseline: %w", err)
	}

	if err := writeResults(cmd.OutOrStdout(), s.format, results, report.PrintOptions{NoColor: s.noColor, Duration: res.Duration}); err != nil {
		return err
	}

	var shown []types.Issue
	for _, r := range results {
		shown = append(shown, r.Shown...)
	}
	if report.ShouldFail(shown, s.failOn) {
		return errThreshold
	}
	return nil
}

func writeResults(w io.Writer, format string, results []engine.TargetResult, opts report.PrintOptions) error {
	switch format {
	case "sarif":
		if err := report.WriteSARIF(w, results, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case "json":
		return report.WriteJSON(w, results)
	case "msgpack":
		return report.WriteMsgpack(w, results)
	case "markdown":
		md := report.Markdown(results)
		if flagPretty && !opts.NoColor {
			out, err := report.RenderMarkdown(md, terminalWidth())
			if err != nil {
				return err
			}
			md = out
		}
		_, err := io.WriteString(w, md)
		return err
	case "text":
		return report.PrintText(w, results, opts)
	default:
		return report.PrintTable(w, results, opts)
	}
	return nil
}
