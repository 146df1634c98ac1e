package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmegen/internal/clipboard"
	"github.com/mithrel/readmegen/internal/editor"
	"github.com/mithrel/readmegen/internal/present"
	"github.com/mithrel/readmegen/internal/util"
	"github.com/mithrel/readmegen/internal/wire"
	"github.com/mithrel/readmegen/pkg/api"
)

// clipboardOverride replaces the system clipboard; set by tests.
var clipboardOverride clipboard.Writer

func newGenerateCmd() *cobra.Command {
	var (
		copyOut   bool
		writePath string
		edit      bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the profile README",
		Long: `Render the profile README from config, .env, READMEGEN_* variables and flags.

Flags override the profile.* config keys; --skill and --social replace the
configured lists rather than appending to them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if clipboardOverride != nil {
				app.WithClipboard(clipboardOverride)
			}
			sess := app.Session

			if edit {
				if err := editProfileInEditor(app); err != nil {
					return err
				}
			}

			md := sess.Generate()

			mode, ok := present.ParseMode(strings.ToLower(app.Cfg.GetString("output")))
			if !ok {
				return fmt.Errorf("invalid --output: %s", app.Cfg.GetString("output"))
			}

			if writePath != "" {
				if err := os.WriteFile(writePath, []byte(md), 0o644); err != nil {
					return fmt.Errorf("write readme: %w", err)
				}
				app.Log.Info("readme written", "path", writePath, "bytes", len(md))
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", writePath)
			} else {
				opts := present.Options{
					Mode:     mode,
					Theme:    sess.Theme(),
					WordWrap: app.Cfg.GetInt("preview.word_wrap"),
				}
				if err := renderReadme(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), md, opts); err != nil {
					return err
				}
			}

			if copyOut {
				if _, err := sess.Copy(cmd.Context()); err != nil {
					if errors.Is(err, clipboard.ErrUnavailable) {
						return fmt.Errorf("%w (install xclip, xsel or wl-copy, or run in a terminal with OSC 52 support)", err)
					}
					return err
				}
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Copied README to clipboard.")
			}
			return nil
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().String("output", "", "output mode: raw|pretty (default from config)")
	cmd.Flags().Int("wrap", 0, "word wrap for pretty output")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the generated README to the clipboard")
	cmd.Flags().StringVar(&writePath, "write", "", "write the README to this file instead of stdout")
	cmd.Flags().BoolVar(&edit, "edit", false, "edit the profile in $EDITOR before rendering")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions([]string{"raw", "pretty"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func addProfileFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "display name")
	f.String("tagline", "", "tagline under the header")
	f.String("about", "", "About Me text")
	f.String("github", "", "GitHub username for the stats cards")
	f.Bool("stats", true, "include the GitHub stats card")
	f.Bool("top-langs", true, "include the top languages card")
	f.StringSlice("skill", nil, "skill badge (repeated or comma-separated)")
	f.StringArray("social", nil, "social link as Name=URL (repeated)")
	f.Bool("no-skills", false, "render without skills")
	f.Bool("no-socials", false, "render without social links")
	_ = cmd.RegisterFlagCompletionFunc("skill", completeListItem(util.SuggestSkills))
	_ = cmd.RegisterFlagCompletionFunc("social", completeSocial)
}

func completeSocial(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if strings.Contains(toComplete, "=") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	matches := util.SuggestSocials(toComplete, 20)
	for i, m := range matches {
		matches[i] = m + "="
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// editProfileInEditor round-trips the session profile through the editor form.
func editProfileInEditor(app *wire.App) error {
	path, err := editor.TempPath()
	if err != nil {
		return err
	}
	initial := []byte(editor.ComposeProfile(app.Session.Profile()))
	out, changed, err := editor.OpenAt(path, initial)
	_ = os.Remove(path)
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	if !changed {
		app.Log.Debug("profile form unchanged")
		return nil
	}
	app.Session.Edit(func(p *api.Profile) { editor.ParseProfile(string(out), p) })
	return nil
}
