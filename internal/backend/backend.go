// Package backend integrates declaro with concrete package managers.
//
// Every package manager is wrapped in a Backend that can report the
// packages installed on user request, apply batch operations, and print
// package details. Backends never decide anything themselves; the engine
// and the review loop drive them.
package backend

import (
	"context"
	"fmt"

	"github.com/declaro/declaro/internal/model"
)

// Backend is one package-manager integration.
type Backend interface {
	// Section returns the group-file section name this backend owns
	// (also used as its display label).
	Section() string

	// SupportsAsDependency reports whether the package manager can mark
	// an explicitly installed package as a dependency. Constant per
	// backend.
	SupportsAsDependency() bool

	// QueryInstalled returns the packages installed on explicit user
	// request, in the package manager's output order.
	QueryInstalled(ctx context.Context) ([]model.Package, error)

	// Install installs the given packages in one invocation.
	Install(ctx context.Context, pkgs []model.Package) error

	// Remove removes the given packages in one invocation.
	Remove(ctx context.Context, pkgs []model.Package) error

	// MakeDependency marks the given packages as installed-as-dependency.
	// Must not be called when SupportsAsDependency is false.
	MakeDependency(ctx context.Context, pkgs []model.Package) error

	// ShowPackageInfo prints the package manager's details for pkg.
	ShowPackageInfo(ctx context.Context, pkg model.Package) error
}

// ToDo is an ordered list of (backend, packages) pairs awaiting a
// decision or an operation. Insertion order is preserved; entries are
// never merged, even for a repeated backend.
type ToDo struct {
	items []ToDoItem
}

// ToDoItem pairs a backend with the packages queued for it.
type ToDoItem struct {
	Backend  Backend
	Packages []model.Package
}

// NewToDo creates an empty ToDo.
func NewToDo() *ToDo {
	return &ToDo{items: []ToDoItem{}}
}

// Push appends one backend with its ordered package list.
func (t *ToDo) Push(b Backend, pkgs []model.Package) {
	t.items = append(t.items, ToDoItem{Backend: b, Packages: pkgs})
}

// Items returns the entries in insertion order.
func (t *ToDo) Items() []ToDoItem {
	return t.items
}

// NothingToDo reports whether every backend's package list is empty.
func (t *ToDo) NothingToDo() bool {
	for _, item := range t.items {
		if len(item.Packages) > 0 {
			return false
		}
	}
	return true
}

// errAsDependencyUnsupported is returned by backends whose package
// manager has no dependency marking. Callers are expected to check
// SupportsAsDependency first.
func errAsDependencyUnsupported(b Backend) error {
	return fmt.Errorf("backend %s does not support dependency marking", b.Section())
}
