package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmegen/internal/present/format"
	"github.com/mithrel/readmegen/internal/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List themes; the configured one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := getApp(cmd).Session.Theme()
			for _, t := range theme.All() {
				mark := " "
				if t == current {
					mark = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-9s preview style: %s\n", mark, t, format.GlamourStyle(t))
			}
			return nil
		},
	}
}
