package a11yscan

import "github.com/spf13/cobra"

func init() {
	cmd := &cobra.Command{
		Use:       "completion bash|zsh|fish|powershell",
		Short:     "Print a shell completion script for a11yscan",
		Long:      "Print a completion script for the given shell to stdout. Source it from your shell profile or save it where your shell loads completions.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Example:   "  source <(a11yscan completion bash)\n  a11yscan completion zsh > \"${fpath[1]}/_a11yscan\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "zsh":
				return rootCmd.GenZshCompletion(w)
			case "fish":
				return rootCmd.GenFishCompletion(w, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(w)
			}
			return rootCmd.GenBashCompletionV2(w, true)
		},
	}
	rootCmd.AddCommand(cmd)
}
