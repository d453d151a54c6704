package engine

import (
	"fmt"
	"strings"

	"github.com/declaro/declaro/internal/model"
)

// GroupNames returns the names of all loaded groups, sorted.
func (e *Engine) GroupNames() []string {
	names := make([]string, 0, len(e.groups))
	for _, g := range e.groups {
		names = append(names, g.Name)
	}
	return names
}

// ShowGroups renders the contents of the named groups in group-file
// syntax. An unknown name yields ErrUnknownGroup.
func (e *Engine) ShowGroups(names []string) (string, error) {
	var out strings.Builder

	for i, name := range names {
		group := e.findGroup(name)
		if group == nil {
			return "", fmt.Errorf("%w: %s", ErrUnknownGroup, name)
		}

		if i > 0 {
			out.WriteString("\n")
		}
		for j, section := range group.Sections {
			if j > 0 {
				out.WriteString("\n")
			}
			fmt.Fprintf(&out, "[%s]\n", section.Name)
			for _, p := range section.Packages {
				fmt.Fprintf(&out, "%s\n", p)
			}
		}
	}

	return out.String(), nil
}

func (e *Engine) findGroup(name string) *model.Group {
	for _, g := range e.groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}
