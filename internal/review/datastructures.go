package review

import (
	"github.com/declaro/declaro/internal/backend"
	"github.com/declaro/declaro/internal/model"
)

// intention is the ephemeral decision parsed from one keystroke. It only
// lives until the per-package loop consumes it.
type intention int

const (
	intentionInvalid intention = iota
	intentionAsDependency
	intentionAssignGroup
	intentionDelete
	intentionInfo
	intentionSkip
	intentionQuit
)

// parseIntention maps one lowercased keystroke to an intention. Keys whose
// feature the current context lacks (dependency marking, any groups to
// assign to) fall through to invalid, so the prompt simply repeats.
func parseIntention(c byte, supportsAsDependency, hasGroups bool) intention {
	switch c {
	case 'a':
		if supportsAsDependency {
			return intentionAsDependency
		}
	case 'g':
		if hasGroups {
			return intentionAssignGroup
		}
	case 'd':
		return intentionDelete
	case 'i':
		return intentionInfo
	case 'q':
		return intentionQuit
	case 's':
		return intentionSkip
	}
	return intentionInvalid
}

type actionKind int

const (
	actionDelete actionKind = iota
	actionAsDependency
	actionAssignGroup
)

// action is the terminal decision for exactly one package. A skipped
// package produces no action at all.
type action struct {
	kind  actionKind
	pkg   model.Package
	group *model.Group
}

func deleteAction(pkg model.Package) action {
	return action{kind: actionDelete, pkg: pkg}
}

func asDependencyAction(pkg model.Package) action {
	return action{kind: actionAsDependency, pkg: pkg}
}

func assignGroupAction(pkg model.Package, group *model.Group) action {
	return action{kind: actionAssignGroup, pkg: pkg, group: group}
}

// reviewsPerBackend collects the ordered action list per backend.
// Entries are kept in insertion order and never merged.
type reviewsPerBackend struct {
	items []backendReviews
}

type backendReviews struct {
	backend backend.Backend
	actions []action
}

func (r *reviewsPerBackend) push(b backend.Backend, actions []action) {
	r.items = append(r.items, backendReviews{backend: b, actions: actions})
}

func (r *reviewsPerBackend) nothingToDo() bool {
	for _, item := range r.items {
		if len(item.actions) > 0 {
			return false
		}
	}
	return true
}

// intoStrategies partitions every backend's actions into one strategy per
// backend, dropping backends that ended up with nothing to do.
func (r *reviewsPerBackend) intoStrategies() []*strategy {
	var result []*strategy
	for _, item := range r.items {
		s := newStrategy(item.backend, item.actions)
		if s.nothingToDo() {
			continue
		}
		result = append(result, s)
	}
	return result
}
