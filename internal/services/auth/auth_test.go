package auth

import (
	"errors"
	"testing"
)

func TestTokenOrFallback_ExplicitValueWins(t *testing.T) {
	store := NewMockStore()
	store.SetToken("hetzner", "from-keychain")

	got, err := TokenOrFallback(store, "hetzner", "from-config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-config" {
		t.Errorf("got %q, want %q", got, "from-config")
	}
}

func TestTokenOrFallback_UsesStore(t *testing.T) {
	store := NewMockStore()
	store.SetToken("OpenStack", "from-keychain")

	got, err := TokenOrFallback(store, "openstack", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-keychain" {
		t.Errorf("got %q, want %q", got, "from-keychain")
	}
}

func TestTokenOrFallback_NotFoundIsEmpty(t *testing.T) {
	got, err := TokenOrFallback(NewMockStore(), "hetzner", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestTokenOrFallback_NilStore(t *testing.T) {
	got, err := TokenOrFallback(nil, "hetzner", "")
	if err != nil || got != "" {
		t.Errorf("got (%q, %v), want empty and no error", got, err)
	}
}

func TestTokenOrFallback_StoreError(t *testing.T) {
	store := NewMockStore()
	locked := errors.New("keychain locked")
	store.FailWith(locked)

	_, err := TokenOrFallback(store, "hetzner", "")
	if !errors.Is(err, locked) {
		t.Errorf("expected keychain error, got %v", err)
	}
}

func TestMockStore_DeleteToken(t *testing.T) {
	store := NewMockStore()
	store.SetToken("hetzner", "tok")

	if err := store.DeleteToken("hetzner"); err != nil {
		t.Fatalf("DeleteToken failed: %v", err)
	}
	if _, err := store.GetToken("hetzner"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound after delete, got %v", err)
	}
	if err := store.DeleteToken("hetzner"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound deleting twice, got %v", err)
	}
}
