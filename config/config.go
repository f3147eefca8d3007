// Package config resolves the credential and device-target configuration
// the workflow needs, from environment variables and an optional YAML
// inventory file. The configuration is built once at startup and passed by
// reference into every component.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable holding the device-lab API token.
const EnvAPIToken = "HS_API_TOKEN"

// DefaultAPIHost is the device-lab API endpoint used when the inventory
// does not override it.
const DefaultAPIHost = "api-dev.headspin.io"

// DeviceTarget identifies one physical device in the lab. It is resolved
// once per run and never mutated.
type DeviceTarget struct {
	// Name is the configuration name the target was resolved under
	Name string `yaml:"-"`

	// ID is the lab's device identifier, used in lock/unlock payloads
	ID string `yaml:"id"`

	// Hostname is the lab host the device is attached to
	Hostname string `yaml:"hostname"`

	// Address is the device's network address, used for capture routing
	Address string `yaml:"address"`
}

// Config holds everything the session workflow needs from the environment.
type Config struct {
	// APIToken is the bearer credential for the device-lab API
	APIToken string

	// APIHost is the device-lab API host
	APIHost string

	inventory *Inventory
}

// Inventory is the optional YAML file describing known device targets.
type Inventory struct {
	APIHost string                  `yaml:"api_host,omitempty"`
	Targets map[string]DeviceTarget `yaml:"targets"`
}

// Option defines a configuration option
type Option func(*Config) error

// WithEnvFile loads environment variables from the given dotenv file before
// the rest of the configuration is resolved.
func WithEnvFile(path string) Option {
	return func(c *Config) error {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}
}

// WithInventoryFile reads device targets from a YAML inventory file.
// Environment variables still take precedence over inventory entries.
func WithInventoryFile(path string) Option {
	return func(c *Config) error {
		inv, err := LoadInventory(path)
		if err != nil {
			return err
		}
		c.inventory = inv
		if inv.APIHost != "" {
			c.APIHost = inv.APIHost
		}
		return nil
	}
}

// New builds the run configuration. A .env file in the working directory is
// picked up automatically when present.
func New(opts ...Option) (*Config, error) {
	// Best effort: a missing .env just means the environment is already set.
	_ = godotenv.Load()

	cfg := &Config{APIHost: DefaultAPIHost}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.APIToken = os.Getenv(EnvAPIToken)

	return cfg, nil
}

// LoadInventory parses a YAML target inventory file.
func LoadInventory(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}
	return parseInventory(data)
}

// ResolveTarget resolves a named device target. Environment variables named
// {name}_Id, {name}_Host and {name}_Address win over the inventory; when any
// of the three is set, all three must be.
func (c *Config) ResolveTarget(name string) (DeviceTarget, error) {
	id := os.Getenv(name + "_Id")
	host := os.Getenv(name + "_Host")
	address := os.Getenv(name + "_Address")

	if id != "" || host != "" || address != "" {
		for envVar, value := range map[string]string{
			name + "_Id":      id,
			name + "_Host":    host,
			name + "_Address": address,
		} {
			if value == "" {
				return DeviceTarget{}, fmt.Errorf("target %s is partially configured: %s is not set", name, envVar)
			}
		}
		return DeviceTarget{Name: name, ID: id, Hostname: host, Address: address}, nil
	}

	if c.inventory != nil {
		if target, ok := c.inventory.Targets[name]; ok {
			target.Name = name
			return target, nil
		}
	}

	return DeviceTarget{}, fmt.Errorf("target %s not found: set %s_Id, %s_Host and %s_Address or add it to the inventory",
		name, name, name, name)
}

// TargetNames returns the names of all targets known to the inventory.
func (c *Config) TargetNames() []string {
	if c.inventory == nil {
		return nil
	}
	names := make([]string, 0, len(c.inventory.Targets))
	for name := range c.inventory.Targets {
		names = append(names, name)
	}
	return names
}
