package providers

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/logger"
	"nathanbeddoewebdev/devstork/internal/services/auth"
	"nathanbeddoewebdev/devstork/internal/util"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/keypairs"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
)

const openStackName = "openstack"

// OpenStackAuth is the "auth" mapping understood by the OpenStack provider.
// Both the novaclient keyword names and the clouds.yaml names are
// accepted; whichever is set wins, then the matching OS_* variable.
type OpenStackAuth struct {
	AuthURL    string `yaml:"auth_url"`
	Username   string `yaml:"username"`
	UserID     string `yaml:"user_id"`
	Password   string `yaml:"password"`
	APIKey     string `yaml:"api_key"`
	RegionName string `yaml:"region_name"`

	ProjectName string `yaml:"project_name"`
	TenantName  string `yaml:"tenant_name"`
	// ProjectID is novaclient's positional project, which it sends as the
	// tenant name.
	ProjectID   string `yaml:"project_id"`
	TenantID    string `yaml:"tenant_id"`

	DomainName string `yaml:"domain_name"`
	DomainID   string `yaml:"domain_id"`

	ApplicationCredentialID     string `yaml:"application_credential_id"`
	ApplicationCredentialName   string `yaml:"application_credential_name"`
	ApplicationCredentialSecret string `yaml:"application_credential_secret"`

	Token string `yaml:"token"`
}

// authOptions merges the mapping with OS_* environment variables.
func (a OpenStackAuth) authOptions() gophercloud.AuthOptions {
	env := os.Getenv
	return gophercloud.AuthOptions{
		IdentityEndpoint: util.FirstNonEmpty(a.AuthURL, env("OS_AUTH_URL")),
		Username:         util.FirstNonEmpty(a.Username, env("OS_USERNAME")),
		UserID:           util.FirstNonEmpty(a.UserID, env("OS_USER_ID")),
		Password:         util.FirstNonEmpty(a.Password, a.APIKey, env("OS_PASSWORD")),
		TenantName:       util.FirstNonEmpty(a.ProjectName, a.ProjectID, a.TenantName, env("OS_PROJECT_NAME"), env("OS_TENANT_NAME")),
		TenantID:         util.FirstNonEmpty(a.TenantID, env("OS_PROJECT_ID"), env("OS_TENANT_ID")),
		DomainName:       util.FirstNonEmpty(a.DomainName, env("OS_USER_DOMAIN_NAME"), env("OS_DOMAIN_NAME")),
		DomainID:         util.FirstNonEmpty(a.DomainID, env("OS_USER_DOMAIN_ID"), env("OS_DOMAIN_ID")),
		TokenID:          util.FirstNonEmpty(a.Token, env("OS_AUTH_TOKEN")),

		ApplicationCredentialID:     util.FirstNonEmpty(a.ApplicationCredentialID, env("OS_APPLICATION_CREDENTIAL_ID")),
		ApplicationCredentialName:   util.FirstNonEmpty(a.ApplicationCredentialName, env("OS_APPLICATION_CREDENTIAL_NAME")),
		ApplicationCredentialSecret: util.FirstNonEmpty(a.ApplicationCredentialSecret, env("OS_APPLICATION_CREDENTIAL_SECRET")),

		AllowReauth: true,
	}
}

func (a OpenStackAuth) region() string {
	return util.FirstNonEmpty(a.RegionName, os.Getenv("OS_REGION_NAME"))
}

// OpenStackProvider implements domain.Provider on the Nova compute API.
// It authenticates against Keystone on the first call, not at construction.
type OpenStackProvider struct {
	authOpts gophercloud.AuthOptions
	region   string

	compute *gophercloud.ServiceClient
}

// NewOpenStackProvider returns a provider that authenticates with opts
// when first used and talks to the compute endpoint of region.
func NewOpenStackProvider(opts gophercloud.AuthOptions, region string) *OpenStackProvider {
	return &OpenStackProvider{authOpts: opts, region: region}
}

// RegisterOpenStack registers the OpenStack provider factory with the global
// registry. A password missing from both the mapping and the environment is
// taken from the keychain entry "openstack".
func RegisterOpenStack() {
	Register(openStackName, func(creds Credentials, store auth.Store) (domain.Provider, error) {
		var cfg OpenStackAuth
		if err := creds.DecodeAuth(&cfg); err != nil {
			return nil, fmt.Errorf("openstack auth: %w", err)
		}

		opts := cfg.authOptions()
		if opts.Password == "" && opts.TokenID == "" && opts.ApplicationCredentialSecret == "" {
			password, err := auth.TokenOrFallback(store, openStackName, "")
			if err != nil {
				return nil, fmt.Errorf("openstack auth: %w", err)
			}
			opts.Password = password
		}

		return NewOpenStackProvider(opts, cfg.region()), nil
	})
}

func (o *OpenStackProvider) GetDisplayName() string {
	return "OpenStack"
}

// computeClient authenticates on first use and caches the compute client.
func (o *OpenStackProvider) computeClient(ctx context.Context) (*gophercloud.ServiceClient, error) {
	if o.compute != nil {
		return o.compute, nil
	}

	logger.DebugWithFields("authenticating", map[string]interface{}{
		"auth_url": o.authOpts.IdentityEndpoint,
		"region":   o.region,
	})

	pc, err := openstack.AuthenticatedClient(ctx, o.authOpts)
	if err != nil {
		return nil, fmt.Errorf("openstack auth: %w", classifyOpenStackError(err))
	}

	compute, err := openstack.NewComputeV2(pc, gophercloud.EndpointOpts{Region: o.region})
	if err != nil {
		return nil, fmt.Errorf("openstack compute endpoint: %w", err)
	}

	o.compute = compute
	return compute, nil
}

func (o *OpenStackProvider) GetServer(ctx context.Context, id string) (*domain.Server, error) {
	client, err := o.computeClient(ctx)
	if err != nil {
		return nil, err
	}

	s, err := servers.Get(ctx, client, id).Extract()
	if err != nil {
		return nil, fmt.Errorf("failed to get server %s: %w", id, classifyOpenStackError(err))
	}

	server := fromNovaServer(s)
	return &server, nil
}

// CreateServer boots a new server. Image and flavor are passed through as
// references. Nova answers a create with little more than the new ID, so
// the server is fetched once afterwards to report its name and addresses.
func (o *OpenStackProvider) CreateServer(ctx context.Context, opts domain.CreateServerOpts) (*domain.Server, error) {
	client, err := o.computeClient(ctx)
	if err != nil {
		return nil, err
	}

	createOpts := keypairs.CreateOptsExt{
		CreateOptsBuilder: servers.CreateOpts{
			Name:      opts.Name,
			ImageRef:  opts.Image,
			FlavorRef: opts.Flavor,
			UserData:  opts.UserData,
		},
		KeyName: opts.KeyName,
	}

	created, err := servers.Create(ctx, client, createOpts, nil).Extract()
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", classifyOpenStackError(err))
	}

	s, err := servers.Get(ctx, client, created.ID).Extract()
	if err != nil {
		// The server exists; report what we know so its ID still gets recorded.
		logger.Warnf("Created server %s but could not fetch its details: %v", created.ID, err)
		server := fromNovaServer(created)
		server.Name = util.FirstNonEmpty(server.Name, opts.Name)
		return &server, nil
	}

	server := fromNovaServer(s)
	if created.AdminPass != "" {
		server.Metadata["admin_password"] = created.AdminPass
	}
	return &server, nil
}

func (o *OpenStackProvider) DeleteServer(ctx context.Context, id string) error {
	client, err := o.computeClient(ctx)
	if err != nil {
		return err
	}

	if err := servers.Delete(ctx, client, id).ExtractErr(); err != nil {
		return fmt.Errorf("failed to delete server: %w", classifyOpenStackError(err))
	}
	return nil
}

// classifyOpenStackError wraps the matching domain sentinel around err.
func classifyOpenStackError(err error) error {
	switch {
	case gophercloud.ResponseCodeIs(err, http.StatusNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case gophercloud.ResponseCodeIs(err, http.StatusUnauthorized),
		gophercloud.ResponseCodeIs(err, http.StatusForbidden):
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	case gophercloud.ResponseCodeIs(err, http.StatusTooManyRequests),
		gophercloud.ResponseCodeIs(err, http.StatusRequestEntityTooLarge):
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	case gophercloud.ResponseCodeIs(err, http.StatusConflict):
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	default:
		return err
	}
}

// fromNovaServer converts a servers.Server to a domain.Server.
func fromNovaServer(s *servers.Server) domain.Server {
	server := domain.Server{
		ID:        s.ID,
		Name:      s.Name,
		Status:    s.Status,
		CreatedAt: s.Created,
		Flavor:    refString(s.Flavor, "original_name", "name", "id"),
		Image:     refString(s.Image, "name", "id"),
		Provider:  openStackName,
		Networks:  novaAddresses(s.Addresses),
		Metadata:  make(map[string]interface{}),
	}

	if s.KeyName != "" {
		server.Metadata["key_name"] = s.KeyName
	}
	if s.TenantID != "" {
		server.Metadata["project_id"] = s.TenantID
	}

	return server
}

// refString returns the first string value found under keys in a Nova
// image or flavor reference.
func refString(ref map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := ref[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// novaAddresses flattens Nova's {"net": [{"addr": "..."}]} address map.
func novaAddresses(addresses map[string]any) map[string][]string {
	networks := make(map[string][]string, len(addresses))
	for name, raw := range addresses {
		entries, ok := raw.([]any)
		if !ok {
			continue
		}
		for _, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			if addr, ok := entry["addr"].(string); ok && addr != "" {
				networks[name] = append(networks[name], addr)
			}
		}
	}
	return networks
}
