package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings read from config.toml.
type Config struct {
	// AURHelper is the binary used for mutating operations on the arch
	// backend, so AUR packages are covered.
	AURHelper string `toml:"aur_helper"`

	// AURRmArgs overrides the arguments passed to the AUR helper when
	// removing packages.
	AURRmArgs []string `toml:"aur_rm_args"`

	// FlatpakSystemwide selects system-wide (true) or per-user flatpak
	// operation.
	FlatpakSystemwide bool `toml:"flatpak_systemwide"`

	// DisabledBackends lists section names that should not be managed.
	DisabledBackends []string `toml:"disabled_backends"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		AURHelper:         "paru",
		FlatpakSystemwide: true,
	}
}

// Load reads the config file at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// BackendDisabled reports whether the given section name is disabled.
func (c *Config) BackendDisabled(section string) bool {
	for _, s := range c.DisabledBackends {
		if s == section {
			return true
		}
	}
	return false
}
