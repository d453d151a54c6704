package backend

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/declaro/declaro/internal/model"
)

// runCommand runs a package-manager command interactively, inheriting the
// terminal so the package manager can ask its own questions.
func runCommand(ctx context.Context, name string, args ...string) error {
	log.Debug().Str("command", name).Strs("args", args).Msg("running")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// captureCommand runs a command and returns its stdout.
func captureCommand(ctx context.Context, name string, args ...string) (string, error) {
	log.Debug().Str("command", name).Strs("args", args).Msg("querying")

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w", name, err)
	}
	return out.String(), nil
}

// parsePackageLines turns newline-separated package names into packages,
// skipping blank lines.
func parsePackageLines(out string) []model.Package {
	var pkgs []model.Package
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pkgs = append(pkgs, model.ParsePackage(line))
	}
	return pkgs
}

// packageNames renders packages as bare command-line arguments.
func packageNames(pkgs []model.Package) []string {
	names := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		names = append(names, p.Name)
	}
	return names
}
