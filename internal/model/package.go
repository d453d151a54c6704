// Package model defines the domain values shared across declaro: packages
// as reported by backends or declared in group files, and the groups they
// are declared in.
package model

import "strings"

// Package identifies a single package. Repo is an optional source hint
// (e.g. the repository prefix in "extra/firefox") and may be empty.
type Package struct {
	Name string
	Repo string
}

// ParsePackage builds a Package from a group-file or backend line.
// A single "/" separates the optional repository hint from the name.
func ParsePackage(s string) Package {
	if repo, name, found := strings.Cut(s, "/"); found {
		return Package{Name: name, Repo: repo}
	}
	return Package{Name: s}
}

// String renders the package the way group files spell it.
func (p Package) String() string {
	if p.Repo != "" {
		return p.Repo + "/" + p.Name
	}
	return p.Name
}
