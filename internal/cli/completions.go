package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmegen/internal/theme"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "completion",
		Short:       "Generate shell completion scripts",
		Annotations: map[string]string{annotSkipValidate: ""},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "generate bash|zsh|fish",
		Short:     "Print the completion script for a shell",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenBashCompletion(out)
			}
		},
	})

	return cmd
}

func completeThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, 0, len(theme.All()))
	for _, t := range theme.All() {
		if strings.HasPrefix(t.String(), strings.ToLower(toComplete)) {
			out = append(out, t.String())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeListItem suggests the element after the last comma of a list flag.
func completeListItem(suggest func(string, int) []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		head, last := "", toComplete
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			head, last = toComplete[:i+1], toComplete[i+1:]
		}
		matches := suggest(strings.TrimSpace(last), 20)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = head + m
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}
