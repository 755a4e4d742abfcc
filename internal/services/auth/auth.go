// Package auth stores provider secrets outside the config file.
//
// A secret saved with "devstork auth login <provider>" is used whenever the
// config's auth mapping leaves the provider's password or token empty.
package auth

import (
	"errors"

	"nathanbeddoewebdev/devstork/internal/util"
)

const ServiceName = "devstork"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(provider string, token string) error
	GetToken(provider string) (string, error)
	DeleteToken(provider string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeProvider normalizes a provider name for consistent key lookup.
func NormalizeProvider(provider string) string {
	return util.NormalizeKey(provider)
}

// TokenOrFallback returns value when set, otherwise the stored secret for
// provider. A missing secret yields "" and no error so callers can try
// further fallbacks; keychain failures are returned.
func TokenOrFallback(store Store, provider, value string) (string, error) {
	if value != "" || store == nil {
		return value, nil
	}

	token, err := store.GetToken(provider)
	if err == nil {
		return token, nil
	}
	if errors.Is(err, ErrTokenNotFound) {
		return "", nil
	}
	return "", err
}
