package auth

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/providers"
	"nathanbeddoewebdev/devstork/internal/services/auth"
)

// useMockStore points the commands at an in-memory store for the test.
func useMockStore(t *testing.T) *auth.MockStore {
	t.Helper()
	store := auth.NewMockStore()
	prev := newStore
	newStore = func() auth.Store { return store }
	t.Cleanup(func() { newStore = prev })
	return store
}

// registerProviders resets the registry to the given names.
func registerProviders(t *testing.T, names ...string) {
	t.Helper()
	providers.Reset()
	t.Cleanup(func() { providers.Reset() })
	for _, name := range names {
		providers.Register(name, func(providers.Credentials, auth.Store) (domain.Provider, error) {
			return nil, errors.New("not used")
		})
	}
}

func execAuth(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestLogin_WithTokenFlag(t *testing.T) {
	store := useMockStore(t)

	stdout, _, err := execAuth(t, "", "login", "Hetzner", "--token", " abc ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := store.GetToken("hetzner")
	if err != nil {
		t.Fatalf("expected stored token, got %v", err)
	}
	if got != "abc" {
		t.Errorf("stored token = %q, want %q", got, "abc")
	}
	if !strings.Contains(stdout, "Saved secret for provider Hetzner") {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestLogin_ReadsSecretFromStdin(t *testing.T) {
	store := useMockStore(t)

	_, stderr, err := execAuth(t, "s3cret\n", "login", "openstack")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got, _ := store.GetToken("openstack"); got != "s3cret" {
		t.Errorf("stored secret = %q, want %q", got, "s3cret")
	}
	if !strings.Contains(stderr, "Enter secret:") {
		t.Errorf("expected prompt on stderr, got %q", stderr)
	}
}

func TestLogin_EmptySecret(t *testing.T) {
	store := useMockStore(t)

	_, _, err := execAuth(t, "\n", "login", "openstack")
	if err == nil || !strings.Contains(err.Error(), "cannot be empty") {
		t.Fatalf("expected empty secret error, got %v", err)
	}
	if _, err := store.GetToken("openstack"); !errors.Is(err, auth.ErrTokenNotFound) {
		t.Errorf("expected nothing stored, got %v", err)
	}
}

func TestStatus(t *testing.T) {
	store := useMockStore(t)
	registerProviders(t, "openstack", "hetzner")
	store.SetToken("openstack", "s3cret")

	stdout, _, err := execAuth(t, "", "status")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := "hetzner: not logged in\nopenstack: logged in\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestStatus_StoreError(t *testing.T) {
	store := useMockStore(t)
	registerProviders(t, "hetzner")
	store.FailWith(errors.New("keychain locked"))

	stdout, _, err := execAuth(t, "", "status")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout, "hetzner: error (keychain locked)") {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestStatus_NoProviders(t *testing.T) {
	useMockStore(t)
	registerProviders(t)

	stdout, _, err := execAuth(t, "", "status")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stdout != "No providers registered.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestLogout(t *testing.T) {
	store := useMockStore(t)
	store.SetToken("hetzner", "abc")

	stdout, _, err := execAuth(t, "", "logout", "hetzner")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout, "Removed secret for provider hetzner") {
		t.Errorf("unexpected stdout: %q", stdout)
	}
	if _, err := store.GetToken("hetzner"); !errors.Is(err, auth.ErrTokenNotFound) {
		t.Errorf("expected token removed, got %v", err)
	}

	stdout, _, err = execAuth(t, "", "logout", "hetzner")
	if err != nil {
		t.Fatalf("second logout: expected no error, got %v", err)
	}
	if !strings.Contains(stdout, "No secret stored for provider hetzner") {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestLogin_ProviderRequiredWithoutTerminal(t *testing.T) {
	useMockStore(t)

	_, _, err := execAuth(t, "s3cret\n", "login")
	if err == nil || !strings.Contains(err.Error(), "provider is required") {
		t.Fatalf("expected provider required error, got %v", err)
	}
}
