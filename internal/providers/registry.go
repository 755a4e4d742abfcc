package providers

import (
	"fmt"
	"sort"
	"sync"

	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/services/auth"
	"nathanbeddoewebdev/devstork/internal/util"
)

// Credentials yields the provider-specific auth settings. *config.Config
// satisfies it by decoding its "auth" mapping.
type Credentials interface {
	DecodeAuth(v any) error
}

// Factory builds a provider. Factories must not contact the API:
// credential problems surface on the first real call.
type Factory func(creds Credentials, store auth.Store) (domain.Provider, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

func Register(name string, factory Factory) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("providers: empty provider name")
	}
	if factory == nil {
		panic("providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("providers: provider %q already registered", name))
	}

	registry[normalizedName] = factory
}

func Get(name string, creds Credentials, store auth.Store) (domain.Provider, error) {
	normalizedName := util.NormalizeKey(name)
	mu.RLock()
	factory, ok := registry[normalizedName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("providers: unknown provider %q", name)
	}

	provider, err := factory(creds, store)
	if err != nil {
		return nil, err
	}

	return provider, nil
}

// RegisterDefaults registers every built-in provider. Call once at startup.
func RegisterDefaults() {
	RegisterOpenStack()
	RegisterHetzner()
}

// Reset clears the provider registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}

// List returns the registered provider names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
