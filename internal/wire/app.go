package wire

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/mithrel/readmegen/internal/clipboard"
	"github.com/mithrel/readmegen/internal/config"
	"github.com/mithrel/readmegen/internal/logx"
	"github.com/mithrel/readmegen/internal/session"
	"github.com/mithrel/readmegen/internal/theme"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg     *viper.Viper
	Log     *slog.Logger
	Clip    clipboard.Writer
	Session *session.Session
}

// BuildApp wires dependencies with the provided config. Logs go to logOut.
func BuildApp(ctx context.Context, v *viper.Viper, logOut io.Writer) (*App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := logx.New(v.GetString("log.level"), v.GetString("log.format"), logOut)

	// Commands that skip validation still get a usable theme.
	th, err := theme.Parse(v.GetString("theme"))
	if err != nil {
		logger.Warn("falling back to dark theme", "err", err)
		th = theme.Dark
	}
	clip := clipboard.NewSystem(os.Stdout)
	sess := session.New(config.SampleProfile(v), th, clip, logger)

	logger.Debug("app built", "config", v.ConfigFileUsed(), "theme", th.String())
	return &App{
		Cfg:     v,
		Log:     logger,
		Clip:    clip,
		Session: sess,
	}, nil
}

// WithClipboard swaps the clipboard, rebuilding the session around the same profile.
func (a *App) WithClipboard(clip clipboard.Writer) *App {
	a.Clip = clip
	a.Session = session.New(a.Session.Profile(), a.Session.Theme(), clip, a.Log)
	return a
}
