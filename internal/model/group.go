package model

import "sort"

// Group is one named group file: an ordered list of per-backend sections,
// each declaring the packages that belong to the group. Groups are loaded
// once per run and shared by pointer afterwards; nothing mutates them
// in memory.
type Group struct {
	// Name is the group file's base name.
	Name string

	// Path is the absolute path of the backing file.
	Path string

	// Sections holds the per-backend package lists in file order.
	Sections []Section
}

// Section is one "[backend]" block inside a group file.
type Section struct {
	Name     string
	Packages []Package
}

// Section returns the section with the given name, or nil.
func (g *Group) Section(name string) *Section {
	for i := range g.Sections {
		if g.Sections[i].Name == name {
			return &g.Sections[i]
		}
	}
	return nil
}

// SortGroups orders groups by name so repeated runs show stable indices
// for a stable group set.
func SortGroups(groups []*Group) {
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})
}
