package providers

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/logger"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// CreateServer creates a new server on Hetzner Cloud.
// The flavor maps to the server type and the key pair name is resolved
// to its ID first, since the API only accepts key IDs.
func (h *HetznerProvider) CreateServer(ctx context.Context, opts domain.CreateServerOpts) (*domain.Server, error) {
	hcloudOpts := hcloud.ServerCreateOpts{
		Name:       opts.Name,
		ServerType: &hcloud.ServerType{Name: opts.Flavor},
		Image:      &hcloud.Image{Name: opts.Image},
		UserData:   string(opts.UserData),
	}

	if opts.KeyName != "" {
		sshKey, _, err := h.client.SSHKey.Get(ctx, opts.KeyName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve SSH key %q: %w", opts.KeyName, classifyHetznerError(err))
		}
		if sshKey == nil {
			return nil, fmt.Errorf("SSH key %q: %w", opts.KeyName, domain.ErrNotFound)
		}
		hcloudOpts.SSHKeys = []*hcloud.SSHKey{sshKey}
	}

	result, _, err := h.client.Server.Create(ctx, hcloudOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", classifyHetznerError(err))
	}

	server := toDomainServer(result.Server)

	if result.Action != nil {
		logger.DebugWithFields("hetzner create accepted", map[string]interface{}{
			"server_id": server.ID,
			"action_id": result.Action.ID,
		})
	}

	// Surface the root password if one was generated.
	if result.RootPassword != "" {
		server.Metadata["root_password"] = result.RootPassword
	}

	return &server, nil
}
