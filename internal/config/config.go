// Package config loads the devstork YAML configuration file.
//
// The file is read once at startup and never validated as a whole:
// required keys are checked when a command first needs them, so a
// config that only lacks e.g. "image" can still run "delete".
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is used when --conf is not given.
	DefaultPath = "conf.yaml"

	// DefaultProvider is the compute backend used when "provider" is unset.
	DefaultProvider = "openstack"

	envFileName = ".env"
)

// ErrMissingKey is returned when a required key is absent or empty.
var ErrMissingKey = errors.New("missing required key")

// Config mirrors the YAML configuration file.
type Config struct {
	IDFile       string `yaml:"id_file"`
	UserDataFile string `yaml:"userdata_file"`
	KeyName      string `yaml:"key_name"`
	Name         string `yaml:"name"`
	Image        string `yaml:"image"`
	Flavor       string `yaml:"flavor"`

	// Provider selects the compute backend (openstack, hetzner).
	Provider string `yaml:"provider"`

	// Timeout bounds each provider operation, e.g. "30s". Empty means the
	// operation may block for as long as the SDK lets it.
	Timeout string `yaml:"timeout"`

	// Auth is left undecoded; the selected provider decodes it into its
	// own credential struct via DecodeAuth.
	Auth yaml.Node `yaml:"auth"`

	path string
}

// Load reads and parses the config file at path. A missing or malformed
// file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	cfg.path = path

	return &cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Require returns the value of a required key, or an error wrapping
// ErrMissingKey when it is unset.
func (c *Config) Require(key string) (string, error) {
	spec := Lookup(key)
	if spec == nil {
		return "", fmt.Errorf("config: unknown key %q", key)
	}

	value := spec.Get(c)
	if value == "" {
		return "", fmt.Errorf("config %s: %w: %s", c.path, ErrMissingKey, spec.Name)
	}
	return value, nil
}

// ProviderName returns the configured compute backend, or DefaultProvider.
func (c *Config) ProviderName() string {
	if c.Provider == "" {
		return DefaultProvider
	}
	return c.Provider
}

// OperationTimeout parses the "timeout" key. Zero means no deadline.
func (c *Config) OperationTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	return d, nil
}

// DecodeAuth decodes the "auth" mapping into v. An absent mapping leaves
// v untouched.
func (c *Config) DecodeAuth(v any) error {
	if c.Auth.Kind == 0 || c.Auth.ShortTag() == "!!null" {
		return nil
	}
	if c.Auth.Kind != yaml.MappingNode {
		return fmt.Errorf("config: auth must be a mapping (line %d)", c.Auth.Line)
	}
	if err := c.Auth.Decode(v); err != nil {
		return fmt.Errorf("config: failed to decode auth: %w", err)
	}
	return nil
}

// LoadEnvFile loads a .env file sitting next to the config file into the
// process environment. Variables already set are not overridden and a
// missing .env file is not an error.
func (c *Config) LoadEnvFile() error {
	envPath := filepath.Join(filepath.Dir(c.path), envFileName)

	if _, err := os.Stat(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: failed to stat %s: %w", envPath, err)
	}

	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("config: failed to load %s: %w", envPath, err)
	}
	return nil
}
