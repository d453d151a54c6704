package engine

import (
	"context"
	"fmt"
)

// Clean removes every unmanaged package. Removals happen per backend in
// processing order; the first failure halts remaining backends without
// undoing earlier removals.
func (e *Engine) Clean(ctx context.Context, req *CleanRequest) (*CleanResult, error) {
	toRemove, err := e.Unmanaged(ctx)
	if err != nil {
		return nil, err
	}

	result := &CleanResult{ToRemove: toRemove, NothingToDo: toRemove.NothingToDo()}
	if req.DryRun || result.NothingToDo {
		return result, nil
	}

	for _, item := range toRemove.Items() {
		if err := item.Backend.Remove(ctx, item.Packages); err != nil {
			return result, fmt.Errorf("removing packages for %s: %w", item.Backend.Section(), err)
		}
	}
	return result, nil
}
