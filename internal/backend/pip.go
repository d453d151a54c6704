package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/declaro/declaro/internal/model"
)

// Pip manages python packages installed through pip. Only top-level
// packages (those no other package requires) count as explicitly
// installed.
type Pip struct{}

func NewPip() *Pip { return &Pip{} }

func (p *Pip) Section() string { return "python" }

func (p *Pip) SupportsAsDependency() bool { return false }

func (p *Pip) QueryInstalled(ctx context.Context) ([]model.Package, error) {
	out, err := captureCommand(ctx, "pip", "list", "--not-required", "--format=json")
	if err != nil {
		return nil, err
	}
	return parsePipList(out)
}

func (p *Pip) Install(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, "pip", append([]string{"install"}, packageNames(pkgs)...)...)
}

func (p *Pip) Remove(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, "pip", append([]string{"uninstall"}, packageNames(pkgs)...)...)
}

func (p *Pip) MakeDependency(ctx context.Context, pkgs []model.Package) error {
	return errAsDependencyUnsupported(p)
}

func (p *Pip) ShowPackageInfo(ctx context.Context, pkg model.Package) error {
	return runCommand(ctx, "pip", "show", pkg.Name)
}

// parsePipList extracts package names from `pip list --format=json`.
func parsePipList(out string) ([]model.Package, error) {
	var entries []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		return nil, fmt.Errorf("parsing pip list output: %w", err)
	}

	pkgs := make([]model.Package, 0, len(entries))
	for _, e := range entries {
		pkgs = append(pkgs, model.Package{Name: e.Name})
	}
	return pkgs, nil
}

var _ Backend = (*Pip)(nil)
