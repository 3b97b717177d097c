package a11yscan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a11yscan/a11yscan/internal/ci"
	"github.com/spf13/cobra"
)

func init() {
	ciCmd := &cobra.Command{Use: "ci", Short: "CI template helpers for multiple providers"}
	rootCmd.AddCommand(ciCmd)

	var provider string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a CI pipeline template for your provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tpl, err := ci.Lookup(provider)
			if err != nil {
				return err
			}
			if _, err := os.Stat(tpl.Path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", tpl.Path)
			}
			// ensure parent directories exist if needed
			if err := os.MkdirAll(filepath.Dir(tpl.Path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(tpl.Path, []byte(tpl.Content), 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", tpl.Path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&provider, "provider", "github", "CI provider: "+strings.Join(ci.Providers(), " | "))
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing pipeline file")
	ciCmd.AddCommand(initCmd)
}
