package config

import (
	"fmt"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the YAML key (e.g. "id_file").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Required marks keys that "create" cannot run without.
	Required bool

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string
}

// Keys is the authoritative list of scalar configuration keys.
// "auth" is not listed: it is a mapping owned by the provider.
var Keys = []KeySpec{
	{
		Name:        "id_file",
		Description: "File holding the ID of the tracked instance",
		Required:    true,
		Get:         func(cfg *Config) string { return cfg.IDFile },
	},
	{
		Name:        "userdata_file",
		Description: "Optional cloud-init user data passed at boot",
		Get:         func(cfg *Config) string { return cfg.UserDataFile },
	},
	{
		Name:        "key_name",
		Description: "SSH key pair injected into the instance",
		Required:    true,
		Get:         func(cfg *Config) string { return cfg.KeyName },
	},
	{
		Name:        "name",
		Description: "Instance display name",
		Required:    true,
		Get:         func(cfg *Config) string { return cfg.Name },
	},
	{
		Name:        "image",
		Description: "Image name or ID to boot from",
		Required:    true,
		Get:         func(cfg *Config) string { return cfg.Image },
	},
	{
		Name:        "flavor",
		Description: "Flavor (server type) name or ID",
		Required:    true,
		Get:         func(cfg *Config) string { return cfg.Flavor },
	},
	{
		Name:        "provider",
		Description: "Compute backend: openstack (default) or hetzner",
		Get:         func(cfg *Config) string { return cfg.Provider },
	},
	{
		Name:        "timeout",
		Description: "Deadline for each provider call, e.g. 30s (default: none)",
		Get:         func(cfg *Config) string { return cfg.Timeout },
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all scalar keys in declaration order.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := len("auth")
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Configuration keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, "auth", "Provider credentials (mapping)")
	return b.String()
}
