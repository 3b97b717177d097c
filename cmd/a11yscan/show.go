package a11yscan

import (
	"fmt"
	"strings"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/a11yscan/a11yscan/internal/report"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	flagIssue int
	flagCopy  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <url>",
		Short: "Show one issue of a report with its suggested fix",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVarP(&flagIssue, "issue", "i", 1, "issue number as listed by scan")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the suggested fix to the clipboard")
}

func runShow(cmd *cobra.Command, args []string) error {
	lcfg, gcfg := loadConfigs()
	cat, err := loadCatalog(pickString(flagCatalog, lcfg.Catalog, gcfg.Catalog))
	if err != nil {
		return err
	}
	rep, err := engine.Synthesize(args[0], cat)
	if err != nil {
		return err
	}
	is, ok := findIssue(rep, flagIssue)
	if !ok {
		return fmt.Errorf("issue %d not found (report has %d issues)", flagIssue, len(rep.Issues))
	}

	noColor := colorDisabled(lcfg, gcfg)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "#%d %s %s  %s:%d\n", is.SequenceID, report.Badge(is.Severity, noColor), is.Rule, is.FilePath, is.Line)
	fmt.Fprintf(w, "%s\n\n%s\n", is.StandardReference, is.Description)
	if is.Note != "" {
		fmt.Fprintf(w, "⚠ %s\n", is.Note)
	}
	fmt.Fprintf(w, "\n← BEFORE\n%s\n\n→ SUGGESTED FIX\n%s\n", snippet(is.Element, is.FilePath, noColor), snippet(is.Fix, is.FilePath, noColor))

	if flagCopy {
		if err := clipboard.WriteAll(is.Fix); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(w, "\nCopied fix to clipboard")
	}
	return nil
}

func findIssue(rep types.Report, id int) (types.Issue, bool) {
	for _, is := range rep.Issues {
		if is.SequenceID == id {
			return is, true
		}
	}
	return types.Issue{}, false
}

func snippet(code, file string, noColor bool) string {
	if noColor {
		return code
	}
	return strings.TrimRight(report.Highlight(code, file), "\n")
}
