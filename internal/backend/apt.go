package backend

import (
	"context"

	"github.com/declaro/declaro/internal/model"
)

// Apt manages packages on Debian-based systems.
type Apt struct{}

func NewApt() *Apt { return &Apt{} }

func (a *Apt) Section() string { return "debian" }

func (a *Apt) SupportsAsDependency() bool { return true }

// QueryInstalled returns the manually installed set, which is apt's
// closest notion of "installed on explicit user request".
func (a *Apt) QueryInstalled(ctx context.Context) ([]model.Package, error) {
	out, err := captureCommand(ctx, "apt-mark", "showmanual")
	if err != nil {
		return nil, err
	}
	return parsePackageLines(out), nil
}

func (a *Apt) Install(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, "apt-get", append([]string{"install"}, packageNames(pkgs)...)...)
}

func (a *Apt) Remove(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, "apt-get", append([]string{"remove"}, packageNames(pkgs)...)...)
}

func (a *Apt) MakeDependency(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, "apt-mark", append([]string{"auto"}, packageNames(pkgs)...)...)
}

func (a *Apt) ShowPackageInfo(ctx context.Context, pkg model.Package) error {
	return runCommand(ctx, "apt-cache", "show", pkg.Name)
}

var _ Backend = (*Apt)(nil)
