package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/readmegen/internal/config"
	"github.com/mithrel/readmegen/internal/logx"
	"github.com/mithrel/readmegen/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Command annotations read by the root pre-run.
const (
	// annotLogFile sends logs to log.file instead of stderr (the TUI owns the screen).
	annotLogFile = "readmegen/log-file"
	// annotSkipValidate lets a command run on a config that fails validation.
	annotSkipValidate = "readmegen/skip-validate"
)

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "readmegen",
		Short:         "readmegen: build a GitHub profile README",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config with Viper.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyConfigFlagOverrides(cmd, v, flagConfigKeys)
			applyListResets(cmd, v)
			if !hasAnnotation(cmd, annotSkipValidate) {
				if err := config.CheckConfigValidity(v); err != nil {
					return fmt.Errorf("invalid config:\n%w", err)
				}
			}

			logOut, err := logWriter(cmd, v)
			if err != nil {
				return err
			}
			// Wire up the app and stash it in context for subcommands.
			app, err := wire.BuildApp(cmd.Context(), v, logOut)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml)")
	cmd.PersistentFlags().String("theme", "", "theme: light|dark|colorful")
	cmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error|off")
	_ = cmd.RegisterFlagCompletionFunc("theme", completeThemes)

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}

func hasAnnotation(cmd *cobra.Command, key string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[key]; ok {
			return true
		}
	}
	return false
}

func logWriter(cmd *cobra.Command, v *viper.Viper) (io.Writer, error) {
	if !hasAnnotation(cmd, annotLogFile) {
		return cmd.ErrOrStderr(), nil
	}
	f, err := logx.OpenFile(v.GetString("log.file"))
	if err != nil {
		return nil, err
	}
	cobra.OnFinalize(func() { _ = f.Close() })
	return f, nil
}
