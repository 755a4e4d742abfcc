// Package lifecycle creates and deletes the single instance tracked by a
// config's id file.
//
// The id file is the only state: present and resolvable means Tracked,
// anything else means Untracked. Every provider call is made once.
package lifecycle

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"nathanbeddoewebdev/devstork/internal/config"
	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/idfile"
)

// ProgressFunc runs action while showing title to the user, e.g. as a
// spinner. It must call action exactly once and return its error.
type ProgressFunc func(title string, action func() error) error

func runDirect(_ string, action func() error) error {
	return action()
}

// Manager is the per-invocation session: one config, one provider.
type Manager struct {
	cfg      *config.Config
	provider domain.Provider
	out      io.Writer
	progress ProgressFunc
	timeout  time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithOutput sets where status lines are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Manager) { m.out = w }
}

// WithProgress wraps every provider call in p.
func WithProgress(p ProgressFunc) Option {
	return func(m *Manager) {
		if p != nil {
			m.progress = p
		}
	}
}

// NewManager returns a Manager for cfg and provider. It fails only when
// the configured timeout cannot be parsed.
func NewManager(cfg *config.Config, provider domain.Provider, opts ...Option) (*Manager, error) {
	timeout, err := cfg.OperationTimeout()
	if err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:      cfg,
		provider: provider,
		out:      os.Stdout,
		progress: runDirect,
		timeout:  timeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Provider returns the compute provider the manager talks to.
func (m *Manager) Provider() domain.Provider {
	return m.provider
}

// ConfigPath returns the path of the config file the session was built from.
func (m *Manager) ConfigPath() string {
	return m.cfg.Path()
}

func (m *Manager) idFile() (*idfile.File, error) {
	path, err := m.cfg.Require("id_file")
	if err != nil {
		return nil, err
	}
	return idfile.New(path), nil
}

// call runs fn under the progress display, bounded by the configured
// timeout when there is one.
func (m *Manager) call(ctx context.Context, title string, fn func(ctx context.Context) error) error {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	return m.progress(title, func() error { return fn(ctx) })
}

func (m *Manager) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
