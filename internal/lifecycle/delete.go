package lifecycle

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/devstork/internal/domain"
)

// Delete removes the tracked instance and then its id file, returning the
// deleted server, or nil when nothing was tracked. When the provider call
// fails the id file is kept so a later run can retry.
func (m *Manager) Delete(ctx context.Context) (*domain.Server, error) {
	lk, err := m.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	if !lk.Found() {
		m.printf("Nothing to delete.\n")
		return nil, nil
	}

	err = m.call(ctx, "Deleting server...", func(ctx context.Context) error {
		return m.provider.DeleteServer(ctx, lk.Server.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete server %s: %w", lk.ID, err)
	}

	file, err := m.idFile()
	if err != nil {
		return nil, err
	}
	if err := file.Remove(); err != nil {
		return nil, err
	}

	m.printf("Deleting server %s\n", lk.Server.Name)
	return lk.Server, nil
}
