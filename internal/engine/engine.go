// Package engine implements declaro's operations against the configured
// backends and group files: computing the unmanaged and missing package
// sets, installing, cleaning, and driving the interactive review.
package engine

import (
	"fmt"

	"github.com/declaro/declaro/internal/backend"
	"github.com/declaro/declaro/internal/config"
	"github.com/declaro/declaro/internal/groups"
	"github.com/declaro/declaro/internal/model"
)

// Engine wires configuration, group files, and backends together.
type Engine struct {
	cfg      *config.Config
	paths    *config.Paths
	backends []backend.Backend
	groups   []*model.Group
}

// New builds an engine from configuration: it loads all group files and
// constructs the managed backends in their fixed processing order. A
// backend is only managed when at least one group declares a section for
// it, so declaro never queries package managers the user has not adopted.
func New(cfg *config.Config, paths *config.Paths) (*Engine, error) {
	loaded, err := groups.Load(paths.Groups)
	if err != nil {
		return nil, fmt.Errorf("loading groups: %w", err)
	}

	all := []backend.Backend{
		backend.NewPacman(cfg.AURHelper, cfg.AURRmArgs),
		backend.NewApt(),
		backend.NewFlatpak(cfg.FlatpakSystemwide),
		backend.NewPip(),
	}

	declared := map[string]bool{}
	for _, g := range loaded {
		for _, s := range g.Sections {
			declared[s.Name] = true
		}
	}

	var managed []backend.Backend
	for _, b := range all {
		if !declared[b.Section()] || cfg.BackendDisabled(b.Section()) {
			continue
		}
		managed = append(managed, b)
	}

	return &Engine{cfg: cfg, paths: paths, backends: managed, groups: loaded}, nil
}

// newWithParts exists for tests that inject fake backends and groups.
func newWithParts(backends []backend.Backend, grps []*model.Group) *Engine {
	return &Engine{cfg: config.Default(), backends: backends, groups: grps}
}

// Groups returns the loaded groups, sorted by name.
func (e *Engine) Groups() []*model.Group {
	return e.groups
}

// declaredNames collects the package names declared for section across
// all groups.
func (e *Engine) declaredNames(section string) map[string]bool {
	declared := map[string]bool{}
	for _, g := range e.groups {
		s := g.Section(section)
		if s == nil {
			continue
		}
		for _, p := range s.Packages {
			declared[p.Name] = true
		}
	}
	return declared
}

// declaredPackages collects the packages declared for section across all
// groups, in group order, deduplicated by name.
func (e *Engine) declaredPackages(section string) []model.Package {
	seen := map[string]bool{}
	var pkgs []model.Package
	for _, g := range e.groups {
		s := g.Section(section)
		if s == nil {
			continue
		}
		for _, p := range s.Packages {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			pkgs = append(pkgs, p)
		}
	}
	return pkgs
}
