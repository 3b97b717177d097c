package a11yscan

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/ignore"
	"github.com/a11yscan/a11yscan/internal/report"
	"github.com/a11yscan/a11yscan/internal/tui"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ui [url]",
		Short: "Scan a URL in the interactive terminal UI",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runUI,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagRules, "rules", "", "only show these templates or rules (comma-separated)")
	cmd.Flags().StringVar(&flagSkipRules, "skip-rules", "", "hide these templates or rules (comma-separated)")
	cmd.Flags().StringVar(&flagMinSeverity, "min-severity", "", "hide issues below: info|warning|critical")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "baseline file (default "+report.DefaultBaselineFile+")")
	cmd.Flags().StringVar(&flagIgnoreFile, "ignore-file", "", "ignore file with path globs (default "+ignore.DefaultFile+")")
}

func runUI(cmd *cobra.Command, args []string) error {
	lcfg, gcfg := loadConfigs()
	s, err := resolveScan(nil, lcfg, gcfg)
	if err != nil {
		return err
	}
	base, err := report.LoadBaseline(s.baseline)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("baseline: %w", err)
	}
	ctx := cmd.Context()
	scan := func(target string) (engine.TargetResult, error) {
		cfg := s.cfg
		cfg.Targets = []string{target}
		res, err := engine.Scan(ctx, cfg)
		if err != nil {
			return engine.TargetResult{}, err
		}
		return res[0], nil
	}

	var target string
	if len(args) == 1 {
		target = args[0]
	}
	ignorePath := pickString(flagIgnoreFile, lcfg.IgnoreFile, gcfg.IgnoreFile)
	if ignorePath == "" {
		ignorePath = ignore.DefaultFile
	}
	return tui.Run(tui.Options{
		Target:       target,
		Scan:         scan,
		Baseline:     base,
		BaselinePath: s.baseline,
		IgnorePath:   ignorePath,
		NoColor:      pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
		Prefs:        tui.LoadPrefs(),
	})
}
