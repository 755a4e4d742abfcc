package lifecycle

import (
	"context"
	"fmt"
	"os"

	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/logger"
)

// Create makes sure the configured instance exists. An already tracked
// instance is reported as is; otherwise one is created and created is
// true. Either way its ID is written to the id file.
func (m *Manager) Create(ctx context.Context) (server *domain.Server, created bool, err error) {
	lk, err := m.Lookup(ctx)
	if err != nil {
		return nil, false, err
	}

	server = lk.Server
	if lk.Found() {
		m.printf("Server already exists:\n")
	} else {
		m.printf("Creating a new instance:\n")
		server, err = m.createServer(ctx)
		if err != nil {
			return nil, false, err
		}
		created = true
	}

	m.printf("Server name:  %s\n", server.Name)
	m.printf("Server id:  %s\n", server.ID)
	m.printf("Networks:  %s\n", server.NetworksString())

	file, err := m.idFile()
	if err != nil {
		return server, created, err
	}
	if err := file.Write(server.ID); err != nil {
		return server, created, err
	}
	logger.DebugWithFields("recorded server id", map[string]interface{}{
		"id_file":   file.Path(),
		"server_id": server.ID,
	})

	return server, created, nil
}

func (m *Manager) createServer(ctx context.Context) (*domain.Server, error) {
	opts, err := m.createOpts()
	if err != nil {
		return nil, err
	}

	userData, err := m.readUserData()
	if err != nil {
		return nil, err
	}
	if len(userData) > 0 {
		m.printf("Adding userdata\n")
		opts.UserData = userData
	}

	var server *domain.Server
	err = m.call(ctx, "Creating server...", func(ctx context.Context) error {
		var createErr error
		server, createErr = m.provider.CreateServer(ctx, opts)
		return createErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	logger.InfoWithFields("server created", map[string]interface{}{
		"server_id": server.ID,
		"provider":  m.provider.GetDisplayName(),
	})
	return server, nil
}

func (m *Manager) createOpts() (domain.CreateServerOpts, error) {
	var opts domain.CreateServerOpts
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"key_name", &opts.KeyName},
		{"name", &opts.Name},
		{"image", &opts.Image},
		{"flavor", &opts.Flavor},
	} {
		v, err := m.cfg.Require(f.key)
		if err != nil {
			return domain.CreateServerOpts{}, err
		}
		*f.dst = v
	}
	return opts, nil
}

// readUserData returns the user-data payload, or nil when none is
// configured. A configured file that cannot be read is an error.
func (m *Manager) readUserData() ([]byte, error) {
	path := m.cfg.UserDataFile
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read userdata file: %w", err)
	}
	return data, nil
}
