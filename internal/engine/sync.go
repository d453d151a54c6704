package engine

import (
	"context"
	"fmt"

	"github.com/declaro/declaro/internal/backend"
	"github.com/declaro/declaro/internal/model"
)

// Sync installs packages that are declared in a group but not installed.
// Installs happen per backend in processing order; the first failure
// halts remaining backends without undoing earlier installs.
func (e *Engine) Sync(ctx context.Context, req *SyncRequest) (*SyncResult, error) {
	toInstall := backend.NewToDo()

	for _, b := range e.backends {
		installed, err := b.QueryInstalled(ctx)
		if err != nil {
			return nil, fmt.Errorf("querying installed packages for %s: %w", b.Section(), err)
		}

		present := map[string]bool{}
		for _, p := range installed {
			present[p.Name] = true
		}

		var missing []model.Package
		for _, p := range e.declaredPackages(b.Section()) {
			if !present[p.Name] {
				missing = append(missing, p)
			}
		}

		if len(missing) > 0 {
			toInstall.Push(b, missing)
		}
	}

	result := &SyncResult{ToInstall: toInstall, NothingToDo: toInstall.NothingToDo()}
	if req.DryRun || result.NothingToDo {
		return result, nil
	}

	for _, item := range toInstall.Items() {
		if err := item.Backend.Install(ctx, item.Packages); err != nil {
			return result, fmt.Errorf("installing packages for %s: %w", item.Backend.Section(), err)
		}
	}
	return result, nil
}
