package domain

import "errors"

// Sentinel errors for cross-provider error classification.
// Providers wrap these so the lifecycle commands can tell a vanished
// server apart from a real failure without importing provider SDKs.
//
//	return fmt.Errorf("failed to get server %s: %w", id, domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested server does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// deleting a server that is still being built.
	ErrConflict = errors.New("conflict")

	// ErrInvalidID indicates a server ID that the provider cannot
	// parse, e.g. a non-numeric ID handed to Hetzner.
	ErrInvalidID = errors.New("invalid server id")
)
