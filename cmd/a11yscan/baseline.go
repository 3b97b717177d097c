package a11yscan

import (
	"fmt"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	var output string
	update := &cobra.Command{
		Use:   "update <url>...",
		Short: "Accept every current issue of the given URLs into the baseline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lcfg, gcfg := loadConfigs()
			cat, err := loadCatalog(pickString(flagCatalog, lcfg.Catalog, gcfg.Catalog))
			if err != nil {
				return err
			}
			results, err := engine.Scan(cmd.Context(), engine.Config{Targets: args, Catalog: cat, Logger: logger})
			if err != nil {
				return err
			}
			path := pickString(output, lcfg.Baseline, gcfg.Baseline)
			if path == "" {
				path = report.DefaultBaselineFile
			}
			if err := report.SaveBaseline(path, results); err != nil {
				return err
			}
			n := 0
			for _, r := range results {
				n += len(r.Shown)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated: %d issues in %s\n", n, path)
			return nil
		},
	}
	update.Flags().StringVarP(&output, "output", "o", "", "baseline file (default "+report.DefaultBaselineFile+")")

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
