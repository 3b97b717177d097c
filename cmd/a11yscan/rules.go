package a11yscan

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List issue templates in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lcfg, gcfg := loadConfigs()
			cat, err := loadCatalog(pickString(flagCatalog, lcfg.Catalog, gcfg.Catalog))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if flagJSON || strings.EqualFold(flagFormat, "json") {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(cat)
			}
			rows := make([][]string, 0, cat.Len())
			for _, t := range cat.Templates {
				rows = append(rows, []string{t.ID, string(t.Severity), t.Rule, t.StandardReference, strconv.Itoa(len(t.Variants))})
			}
			table := tablewriter.NewWriter(w)
			table.Header("ID", "SEVERITY", "RULE", "WCAG", "VARIANTS")
			if err := table.Bulk(rows); err != nil {
				return err
			}
			return table.Render()
		},
	}
	rootCmd.AddCommand(cmd)
}
