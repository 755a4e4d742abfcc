package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/logger"
)

// State is the tracked-instance state as seen by this program.
type State int

const (
	// Untracked: no id file, or the id it holds no longer resolves.
	Untracked State = iota
	// Tracked: the id file names a live instance.
	Tracked
)

func (s State) String() string {
	switch s {
	case Tracked:
		return "tracked"
	default:
		return "untracked"
	}
}

// Lookup is the result of resolving the id file against the provider.
type Lookup struct {
	State State

	// ID is the id file content. Set whenever the file exists, including
	// when it is stale.
	ID string

	// Server is the live instance. Only set when State is Tracked.
	Server *domain.Server

	// Stale reports an id file whose instance the provider no longer knows.
	// The file is left in place.
	Stale bool
}

// Found reports whether a live instance is tracked.
func (l Lookup) Found() bool {
	return l.State == Tracked && l.Server != nil
}

// Lookup resolves the tracked instance. A missing id file, a not-found
// answer from the provider, or an id the provider cannot parse yields
// Untracked; any other failure is returned.
func (m *Manager) Lookup(ctx context.Context) (Lookup, error) {
	file, err := m.idFile()
	if err != nil {
		return Lookup{}, err
	}

	id, ok, err := file.Read()
	if err != nil {
		return Lookup{}, err
	}
	if !ok {
		logger.Debugf("No id file at %s", file.Path())
		return Lookup{State: Untracked}, nil
	}

	var server *domain.Server
	err = m.call(ctx, "Looking up server...", func(ctx context.Context) error {
		var getErr error
		server, getErr = m.provider.GetServer(ctx, id)
		return getErr
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidID) {
			logger.WarnWithFields("id file points at a server that no longer exists", map[string]interface{}{
				"id_file":   file.Path(),
				"server_id": id,
			})
			return Lookup{State: Untracked, ID: id, Stale: true}, nil
		}
		return Lookup{}, fmt.Errorf("failed to look up server %s: %w", id, err)
	}

	return Lookup{State: Tracked, ID: id, Server: server}, nil
}
