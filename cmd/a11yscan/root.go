package a11yscan

import (
	"errors"
	"fmt"
	"os"

	"github.com/a11yscan/a11yscan/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagFormat  string
	flagNoColor bool
	flagFailOn  string
	flagCatalog string
	flagVerbose bool

	version = "0.1.0"
	logger  = zap.NewNop()
)

// errThreshold signals that shown issues reached the --fail-on severity.
var errThreshold = errors.New("issues at or above the fail-on threshold")

// rootCmd is the base Cobra command for the a11yscan CLI.
var rootCmd = &cobra.Command{
	Use:           "a11yscan",
	Short:         "Accessibility reports for your web app",
	Long:          "a11yscan produces deterministic accessibility reports for URLs, with fixes, baselines and CI templates.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := logging.New(flagVerbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

// Execute runs the a11yscan CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errThreshold) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON (same as --format json)")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0 (same as --format sarif)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: table|text|json|sarif|markdown|msgpack")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit 1 on issues at or above: critical|warning|info|none (default warning)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "issue catalog YAML (default: built-in)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
}
