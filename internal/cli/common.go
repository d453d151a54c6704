package cli

import (
	"github.com/declaro/declaro/internal/backend"
	"github.com/declaro/declaro/internal/config"
	"github.com/declaro/declaro/internal/engine"
)

// newEngine builds the engine from the on-disk configuration.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, err
	}

	return engine.New(cfg, paths)
}

// printToDo lists a per-backend package plan.
func printToDo(todo *backend.ToDo) {
	for _, item := range todo.Items() {
		if len(item.Packages) == 0 {
			continue
		}
		PrintInfo("[" + item.Backend.Section() + "]")
		names := make([]string, 0, len(item.Packages))
		for _, p := range item.Packages {
			names = append(names, p.String())
		}
		PrintList(names, 1)
	}
}
