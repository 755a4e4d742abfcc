package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps one secret per provider in the OS keychain
// (Keychain on macOS, Secret Service on Linux, Credential Manager on
// Windows), under the user "<provider>" of the given service.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(provider string, token string) error {
	providerKey, err := k.key(provider)
	if err != nil {
		return err
	}
	return keyring.Set(k.serviceName, providerKey, token)
}

func (k *KeyringStore) GetToken(provider string) (string, error) {
	providerKey, err := k.key(provider)
	if err != nil {
		return "", err
	}
	token, err := keyring.Get(k.serviceName, providerKey)
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteToken(provider string) error {
	providerKey, err := k.key(provider)
	if err != nil {
		return err
	}
	err = keyring.Delete(k.serviceName, providerKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}

func (k *KeyringStore) key(provider string) (string, error) {
	providerKey := NormalizeProvider(provider)
	if providerKey == "" {
		return "", fmt.Errorf("auth: empty provider name")
	}
	return providerKey, nil
}
