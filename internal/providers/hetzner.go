package providers

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/logger"
	"nathanbeddoewebdev/devstork/internal/services/auth"
	"nathanbeddoewebdev/devstork/internal/util"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

const hetznerName = "hetzner"

// HetznerAuth is the "auth" mapping understood by the Hetzner provider.
type HetznerAuth struct {
	Token    string `yaml:"token"`
	Endpoint string `yaml:"endpoint"`
}

// HetznerProvider implements domain.Provider using the Hetzner Cloud API.
type HetznerProvider struct {
	client *hcloud.Client
}

// NewHetznerProvider creates a HetznerProvider with the given hcloud client options.
// Default options (application name) are applied first; callers can override them.
func NewHetznerProvider(opts ...hcloud.ClientOption) *HetznerProvider {
	defaults := []hcloud.ClientOption{
		hcloud.WithApplication("devstork", "0.1.0"),
	}
	allOpts := append(defaults, opts...)
	return &HetznerProvider{
		client: hcloud.NewClient(allOpts...),
	}
}

// RegisterHetzner registers the Hetzner provider factory with the global registry.
// The token comes from auth.token, then the keychain, then HCLOUD_TOKEN.
func RegisterHetzner() {
	Register(hetznerName, func(creds Credentials, store auth.Store) (domain.Provider, error) {
		var cfg HetznerAuth
		if err := creds.DecodeAuth(&cfg); err != nil {
			return nil, fmt.Errorf("hetzner auth: %w", err)
		}

		token, err := auth.TokenOrFallback(store, hetznerName, cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("hetzner auth: %w", err)
		}
		token = util.FirstNonEmpty(token, os.Getenv("HCLOUD_TOKEN"))
		if token == "" {
			logger.Warnf("No Hetzner token configured; API calls will be rejected")
		}

		opts := []hcloud.ClientOption{hcloud.WithToken(token)}
		if cfg.Endpoint != "" {
			opts = append(opts, hcloud.WithEndpoint(cfg.Endpoint))
		}
		return NewHetznerProvider(opts...), nil
	})
}

func (h *HetznerProvider) GetDisplayName() string {
	return "Hetzner"
}

// GetServer fetches a server by its numeric ID.
func (h *HetznerProvider) GetServer(ctx context.Context, id string) (*domain.Server, error) {
	numericID, err := parseHetznerID(id)
	if err != nil {
		return nil, err
	}

	s, _, err := h.client.Server.GetByID(ctx, numericID)
	if err != nil {
		return nil, fmt.Errorf("failed to get server %s: %w", id, classifyHetznerError(err))
	}
	if s == nil {
		return nil, fmt.Errorf("failed to get server %s: %w", id, domain.ErrNotFound)
	}

	server := toDomainServer(s)
	return &server, nil
}

// DeleteServer removes a server by its ID. The ID must be a numeric string
// matching the Hetzner server ID.
func (h *HetznerProvider) DeleteServer(ctx context.Context, id string) error {
	numericID, err := parseHetznerID(id)
	if err != nil {
		return err
	}

	_, _, err = h.client.Server.DeleteWithResult(ctx, &hcloud.Server{ID: numericID})
	if err != nil {
		return fmt.Errorf("failed to delete server: %w", classifyHetznerError(err))
	}

	return nil
}

func parseHetznerID(id string) (int64, error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", domain.ErrInvalidID, id, err)
	}
	return numericID, nil
}

// classifyHetznerError wraps the matching domain sentinel around err.
func classifyHetznerError(err error) error {
	switch {
	case hcloud.IsError(err, hcloud.ErrorCodeNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case hcloud.IsError(err, hcloud.ErrorCodeUnauthorized):
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	case hcloud.IsError(err, hcloud.ErrorCodeRateLimitExceeded):
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	case hcloud.IsError(err, hcloud.ErrorCodeConflict), hcloud.IsError(err, hcloud.ErrorCodeLocked):
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	default:
		return err
	}
}

// toDomainServer converts an hcloud.Server to a domain.Server.
func toDomainServer(s *hcloud.Server) domain.Server {
	server := domain.Server{
		ID:        strconv.FormatInt(s.ID, 10),
		Name:      s.Name,
		Status:    string(s.Status),
		CreatedAt: s.Created,
		Provider:  hetznerName,
		Networks:  make(map[string][]string),
		Metadata:  make(map[string]interface{}),
	}

	var public []string
	if !s.PublicNet.IPv4.IsUnspecified() {
		public = append(public, s.PublicNet.IPv4.IP.String())
	}
	if !s.PublicNet.IPv6.IsUnspecified() {
		public = append(public, s.PublicNet.IPv6.IP.String())
	}
	if len(public) > 0 {
		server.Networks["public"] = public
	}

	for _, pn := range s.PrivateNet {
		if pn.IP == nil {
			continue
		}
		name := "private"
		if pn.Network != nil {
			name = util.FirstNonEmpty(pn.Network.Name, fmt.Sprintf("network-%d", pn.Network.ID))
		}
		server.Networks[name] = append(server.Networks[name], pn.IP.String())
	}

	if s.ServerType != nil {
		server.Flavor = s.ServerType.Name
		server.Metadata["architecture"] = string(s.ServerType.Architecture)
	}

	if s.Image != nil {
		server.Image = s.Image.Name
	}

	if s.Location != nil {
		server.Metadata["region"] = s.Location.Name
	}

	return server
}
