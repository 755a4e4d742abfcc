package instance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"nathanbeddoewebdev/devstork/internal/config"
	"nathanbeddoewebdev/devstork/internal/lifecycle"
	"nathanbeddoewebdev/devstork/internal/providers"
	"nathanbeddoewebdev/devstork/internal/services/auth"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// SessionAnnotation marks commands that need a loaded config and provider.
const SessionAnnotation = "devstork/session"

type sessionKey struct{}

var newStore = auth.DefaultStore

// NeedsSession reports whether cmd was marked with SessionAnnotation.
func NeedsSession(cmd *cobra.Command) bool {
	_, ok := cmd.Annotations[SessionAnnotation]
	return ok
}

// StartSession loads the config named by --conf, builds its provider and
// attaches a lifecycle.Manager to cmd's context.
func StartSession(cmd *cobra.Command) error {
	confPath := config.DefaultPath
	if f := cmd.Flag("conf"); f != nil && f.Value.String() != "" {
		confPath = f.Value.String()
	}

	cfg, err := config.Load(confPath)
	if err != nil {
		return err
	}
	if err := cfg.LoadEnvFile(); err != nil {
		return err
	}

	provider, err := providers.Get(cfg.ProviderName(), cfg, newStore())
	if err != nil {
		return err
	}

	manager, err := lifecycle.NewManager(cfg, provider,
		lifecycle.WithOutput(cmd.OutOrStdout()),
		lifecycle.WithProgress(progressFor(cmd.ErrOrStderr())),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, sessionKey{}, manager))
	return nil
}

func managerFrom(cmd *cobra.Command) (*lifecycle.Manager, error) {
	if ctx := cmd.Context(); ctx != nil {
		if m, ok := ctx.Value(sessionKey{}).(*lifecycle.Manager); ok {
			return m, nil
		}
	}
	return nil, errors.New("no session: config was not loaded")
}

// progressFor shows a spinner on w while a provider call runs, but only
// when w is a terminal. Otherwise the call runs silently.
func progressFor(w io.Writer) lifecycle.ProgressFunc {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}

	accessible := os.Getenv("ACCESSIBLE") != ""
	return func(title string, action func() error) error {
		var actionErr error
		spinErr := spinner.New().
			Title(title).
			Accessible(accessible).
			Output(w).
			Action(func() {
				actionErr = action()
			}).
			Run()
		if spinErr != nil {
			return fmt.Errorf("spinner: %w", spinErr)
		}
		return actionErr
	}
}
