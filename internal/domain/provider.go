package domain

import "context"

// Provider is the compute API surface the lifecycle commands depend on.
// Implementations wrap errors with the sentinels in errors.go so callers
// never import a provider SDK.
type Provider interface {
	GetDisplayName() string

	// GetServer fetches a server by ID. An unknown ID yields an error
	// wrapping ErrNotFound.
	GetServer(ctx context.Context, id string) (*Server, error)

	// CreateServer requests a new server and returns as soon as the
	// provider has accepted the request. It does not wait for the server
	// to boot.
	CreateServer(ctx context.Context, opts CreateServerOpts) (*Server, error)

	DeleteServer(ctx context.Context, id string) error
}
