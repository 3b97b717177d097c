package a11yscan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a11yscan/a11yscan/internal/config"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/spf13/cobra"
)

var (
	cfgOutput      string
	cfgFormat      string
	cfgFailOn      string
	cfgThreads     int
	cfgMinSeverity string
	cfgSkipRules   string
	cfgNoColor     bool
	cfgForce       bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .a11yscan.yml (or .toml) with the selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".a11yscan.yml", "output file path (.toml writes TOML)")
	initCmd.Flags().StringVar(&cfgFormat, "format", "", "default output format")
	initCmd.Flags().StringVar(&cfgFailOn, "fail-on", "", "default fail-on threshold")
	initCmd.Flags().IntVar(&cfgThreads, "threads", 0, "worker threads")
	initCmd.Flags().StringVar(&cfgMinSeverity, "min-severity", "", "hide issues below this severity")
	initCmd.Flags().StringVar(&cfgSkipRules, "skip-rules", "", "comma-separated templates or rules to hide")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	fc := config.Default()
	if cfgFormat != "" {
		fc.Format = strPtr(cfgFormat)
	}
	if cfgFailOn != "" {
		fc.FailOn = strPtr(cfgFailOn)
	}
	if cfgThreads != 0 {
		fc.Threads = &cfgThreads
	}
	if cfgMinSeverity != "" {
		if !types.Severity(cfgMinSeverity).Valid() {
			return fmt.Errorf("unknown --min-severity %q", cfgMinSeverity)
		}
		fc.MinSeverity = strPtr(cfgMinSeverity)
	}
	fc.SkipRules = optStrPtr(cfgSkipRules)
	if cfgNoColor {
		fc.NoColor = &cfgNoColor
	}

	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
	}
	b, err := config.Encode(fc, strings.EqualFold(filepath.Ext(cfgOutput), ".toml"))
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
