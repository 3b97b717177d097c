package a11yscan

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/a11yscan/a11yscan/internal/catalog"
	"github.com/a11yscan/a11yscan/internal/types"
	"github.com/spf13/cobra"
)

var (
	rulesStart = []byte("<!-- BEGIN:RULES -->")
	rulesEnd   = []byte("<!-- END:RULES -->")
)

// gendocs regenerates the rules section in README.md between the markers
// <!-- BEGIN:RULES --> and <!-- END:RULES -->.
func init() {
	var path string
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate the README rules section from the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			lcfg, gcfg := loadConfigs()
			cat, err := loadCatalog(pickString(flagCatalog, lcfg.Catalog, gcfg.Catalog))
			if err != nil {
				return err
			}
			out, err := spliceRules(b, cat)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := os.WriteFile(path, out, 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "readme", "README.md", "markdown file containing the rules markers")
	rootCmd.AddCommand(cmd)
}

func spliceRules(b []byte, cat catalog.Catalog) ([]byte, error) {
	i := bytes.Index(b, rulesStart)
	j := bytes.Index(b, rulesEnd)
	if i < 0 || j < 0 || j <= i {
		return nil, fmt.Errorf("rules markers not found")
	}
	var nb bytes.Buffer
	nb.Write(b[:i])
	nb.Write(rulesStart)
	nb.WriteString("\n")
	nb.WriteString(rulesSection(cat))
	nb.Write(rulesEnd)
	nb.Write(b[j+len(rulesEnd):])
	return nb.Bytes(), nil
}

func rulesSection(cat catalog.Catalog) string {
	var out strings.Builder
	out.WriteString("\nTemplates by severity (run `a11yscan rules` for the full list):\n\n")
	for _, sev := range []types.Severity{types.SevCritical, types.SevWarning, types.SevInfo} {
		var ids []string
		for _, t := range cat.Templates {
			if t.Severity == sev {
				ids = append(ids, "`"+t.ID+"`")
			}
		}
		if len(ids) == 0 {
			continue
		}
		out.WriteString("- " + strings.ToUpper(string(sev)[:1]) + string(sev)[1:] + ":\n")
		out.WriteString("  - " + strings.Join(ids, ", ") + "\n")
	}
	out.WriteString("\n")
	return out.String()
}
