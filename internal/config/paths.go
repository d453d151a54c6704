// Package config manages declaro configuration and filesystem paths.
//
// Configuration lives under ~/.config/declaro/ by default: group files in
// groups/ and settings in config.toml. The root can be overridden via
// environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by declaro.
type Paths struct {
	// Root is the base directory for all declaro data (default: ~/.config/declaro)
	Root string

	// Groups is the directory containing group files
	Groups string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for declaro.
// Paths can be overridden with environment variables:
// - DECLARO_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("DECLARO_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".config", "declaro")
	}

	return &Paths{
		Root:   root,
		Groups: filepath.Join(root, "groups"),
		Config: filepath.Join(root, "config.toml"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Groups,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
