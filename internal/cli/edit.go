package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/readmegen/internal/present/tui"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "edit",
		Short:       "Edit the profile in an interactive editor with live preview",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotLogFile: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if clipboardOverride != nil {
				app.WithClipboard(clipboardOverride)
			}
			return tui.Run(cmd.Context(), app)
		},
	}
	return cmd
}
