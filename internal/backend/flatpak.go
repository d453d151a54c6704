package backend

import (
	"context"

	"github.com/declaro/declaro/internal/model"
)

// Flatpak manages flatpak applications, either system-wide or per-user
// depending on configuration. Flatpak has no concept of dependency
// marking.
type Flatpak struct {
	systemwide bool
}

func NewFlatpak(systemwide bool) *Flatpak {
	return &Flatpak{systemwide: systemwide}
}

func (f *Flatpak) Section() string { return "flatpak" }

func (f *Flatpak) SupportsAsDependency() bool { return false }

func (f *Flatpak) QueryInstalled(ctx context.Context) ([]model.Package, error) {
	out, err := captureCommand(ctx, "flatpak", f.scope(), "list", "--app", "--columns=application")
	if err != nil {
		return nil, err
	}
	return parsePackageLines(out), nil
}

func (f *Flatpak) Install(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, "flatpak", append([]string{f.scope(), "install"}, packageNames(pkgs)...)...)
}

func (f *Flatpak) Remove(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, "flatpak", append([]string{f.scope(), "uninstall"}, packageNames(pkgs)...)...)
}

func (f *Flatpak) MakeDependency(ctx context.Context, pkgs []model.Package) error {
	return errAsDependencyUnsupported(f)
}

func (f *Flatpak) ShowPackageInfo(ctx context.Context, pkg model.Package) error {
	return runCommand(ctx, "flatpak", f.scope(), "info", pkg.Name)
}

func (f *Flatpak) scope() string {
	if f.systemwide {
		return "--system"
	}
	return "--user"
}

var _ Backend = (*Flatpak)(nil)
