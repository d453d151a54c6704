package engine

import (
	"context"
	"fmt"

	"github.com/declaro/declaro/internal/backend"
	"github.com/declaro/declaro/internal/model"
)

// Unmanaged returns, per backend, the packages installed on explicit user
// request but not declared in any group. Backend order is the fixed
// processing order; package order follows each backend's query output.
func (e *Engine) Unmanaged(ctx context.Context) (*backend.ToDo, error) {
	todo := backend.NewToDo()

	for _, b := range e.backends {
		installed, err := b.QueryInstalled(ctx)
		if err != nil {
			return nil, fmt.Errorf("querying installed packages for %s: %w", b.Section(), err)
		}

		declared := e.declaredNames(b.Section())
		var unmanaged []model.Package
		for _, p := range installed {
			if !declared[p.Name] {
				unmanaged = append(unmanaged, p)
			}
		}

		if len(unmanaged) > 0 {
			todo.Push(b, unmanaged)
		}
	}

	return todo, nil
}
