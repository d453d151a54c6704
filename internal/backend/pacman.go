package backend

import (
	"context"

	"github.com/declaro/declaro/internal/model"
)

// Pacman manages packages on Arch-based systems. Mutating operations go
// through the configured AUR helper so AUR packages are covered; queries
// always use pacman itself.
type Pacman struct {
	helper string
	rmArgs []string
}

// NewPacman creates the arch backend. helper is the AUR helper binary to
// use for install/remove/mark operations; rmArgs overrides the default
// removal arguments when non-empty.
func NewPacman(helper string, rmArgs []string) *Pacman {
	if len(rmArgs) == 0 {
		rmArgs = []string{"-Rns"}
	}
	return &Pacman{helper: helper, rmArgs: rmArgs}
}

func (p *Pacman) Section() string { return "arch" }

func (p *Pacman) SupportsAsDependency() bool { return true }

func (p *Pacman) QueryInstalled(ctx context.Context) ([]model.Package, error) {
	out, err := captureCommand(ctx, "pacman", "-Qqe")
	if err != nil {
		return nil, err
	}
	return parsePackageLines(out), nil
}

func (p *Pacman) Install(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, p.helper, append([]string{"-S"}, packageNames(pkgs)...)...)
}

func (p *Pacman) Remove(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, p.helper, append(p.removeArgs(), packageNames(pkgs)...)...)
}

func (p *Pacman) MakeDependency(ctx context.Context, pkgs []model.Package) error {
	return runCommand(ctx, p.helper, append([]string{"-D", "--asdeps"}, packageNames(pkgs)...)...)
}

func (p *Pacman) ShowPackageInfo(ctx context.Context, pkg model.Package) error {
	return runCommand(ctx, "pacman", "-Qi", pkg.Name)
}

func (p *Pacman) removeArgs() []string {
	args := make([]string, len(p.rmArgs))
	copy(args, p.rmArgs)
	return args
}

var _ Backend = (*Pacman)(nil)
