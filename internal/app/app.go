// Package app wires configuration, orchestration, presentation and the
// optional metrics endpoint into the primecalc application lifecycle.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/server"
	"github.com/agbru/primecalc/internal/tui"
	"github.com/agbru/primecalc/internal/ui"
)

// Application represents the primecalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Log       logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Log = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Log == nil {
		app.Log = logging.NewDefaultLogger()
	}

	programName := "primecalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	var rec orchestration.MetricsRecorder = orchestration.NullMetricsRecorder{}
	if a.Config.MetricsAddr != "" {
		m := server.NewMetrics()
		srv := server.New(a.Config.MetricsAddr, m, a.Log)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.Log.Warn("metrics server shutdown failed", logging.Err(err))
			}
		}()
		rec = m
	}

	if a.Config.TUI {
		return tui.Run(ctx, a.Config, rec)
	}

	return a.runSieve(ctx, out, rec)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
