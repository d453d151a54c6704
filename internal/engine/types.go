package engine

import "github.com/declaro/declaro/internal/backend"

// SyncRequest represents a request to install declared-but-missing packages.
type SyncRequest struct {
	// DryRun computes the plan without installing anything
	DryRun bool
}

// SyncResult represents the outcome of a sync.
type SyncResult struct {
	// ToInstall is the per-backend list of packages that were (or, with
	// DryRun, would be) installed
	ToInstall *backend.ToDo

	// NothingToDo indicates every backend was already in sync
	NothingToDo bool
}

// CleanRequest represents a request to remove unmanaged packages.
type CleanRequest struct {
	// DryRun computes the plan without removing anything
	DryRun bool
}

// CleanResult represents the outcome of a clean.
type CleanResult struct {
	// ToRemove is the per-backend list of packages that were (or, with
	// DryRun, would be) removed
	ToRemove *backend.ToDo

	// NothingToDo indicates no unmanaged packages were found
	NothingToDo bool
}
