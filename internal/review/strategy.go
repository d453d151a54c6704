package review

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/declaro/declaro/internal/backend"
	"github.com/declaro/declaro/internal/model"
)

var sectionColor = color.New(color.FgBlue, color.Bold)

// GroupWriter persists an assign-to-group decision. Implemented by
// groups.FileWriter; faked in tests.
type GroupWriter interface {
	AppendPackage(group *model.Group, section string, pkg model.Package) error
}

// groupAssignment pairs a package with the group it gets declared in.
type groupAssignment struct {
	pkg   model.Package
	group *model.Group
}

// strategy is one backend's executable batch of review decisions,
// partitioned by kind. Relative order within each list matches the order
// the decisions were made in.
type strategy struct {
	backend      backend.Backend
	toDelete     []model.Package
	asDependency []model.Package
	assignGroup  []groupAssignment
}

func newStrategy(b backend.Backend, actions []action) *strategy {
	s := &strategy{backend: b}
	for _, a := range actions {
		switch a.kind {
		case actionDelete:
			s.toDelete = append(s.toDelete, a.pkg)
		case actionAsDependency:
			s.asDependency = append(s.asDependency, a.pkg)
		case actionAssignGroup:
			s.assignGroup = append(s.assignGroup, groupAssignment{pkg: a.pkg, group: a.group})
		}
	}
	return s
}

func (s *strategy) nothingToDo() bool {
	return len(s.toDelete) == 0 && len(s.asDependency) == 0 && len(s.assignGroup) == 0
}

// show prints the backend's pending operations for the confirmation
// preview.
func (s *strategy) show(w io.Writer) {
	sectionColor.Fprintf(w, "[%s]\n", s.backend.Section())

	if len(s.toDelete) > 0 {
		fmt.Fprintln(w, "delete:")
		for _, p := range s.toDelete {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	if len(s.asDependency) > 0 {
		fmt.Fprintln(w, "mark as dependency:")
		for _, p := range s.asDependency {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	if len(s.assignGroup) > 0 {
		fmt.Fprintln(w, "assign to group:")
		for _, a := range s.assignGroup {
			fmt.Fprintf(w, "  %s -> %s\n", a.pkg, a.group.Name)
		}
	}
}

// execute applies the batch: removals first, then dependency marking,
// then group assignments. The first failure halts the strategy; nothing
// already applied is undone.
func (s *strategy) execute(ctx context.Context, writer GroupWriter) error {
	if len(s.toDelete) > 0 {
		if err := s.backend.Remove(ctx, s.toDelete); err != nil {
			return fmt.Errorf("removing packages for %s: %w", s.backend.Section(), err)
		}
	}
	if len(s.asDependency) > 0 {
		if err := s.backend.MakeDependency(ctx, s.asDependency); err != nil {
			return fmt.Errorf("marking dependencies for %s: %w", s.backend.Section(), err)
		}
	}
	for _, a := range s.assignGroup {
		if err := writer.AppendPackage(a.group, s.backend.Section(), a.pkg); err != nil {
			return fmt.Errorf("assigning %s to group %s: %w", a.pkg, a.group.Name, err)
		}
	}
	return nil
}
