package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePackage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Package
	}{
		{
			name: "bare name",
			in:   "neovim",
			want: Package{Name: "neovim"},
		},
		{
			name: "with repository hint",
			in:   "extra/firefox",
			want: Package{Name: "firefox", Repo: "extra"},
		},
		{
			name: "only first slash separates",
			in:   "community/some/odd",
			want: Package{Name: "some/odd", Repo: "community"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePackage(tt.in)
			if got != tt.want {
				t.Errorf("ParsePackage(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPackageString(t *testing.T) {
	if got := (Package{Name: "firefox", Repo: "extra"}).String(); got != "extra/firefox" {
		t.Errorf("String() = %q, want %q", got, "extra/firefox")
	}
	if got := (Package{Name: "neovim"}).String(); got != "neovim" {
		t.Errorf("String() = %q, want %q", got, "neovim")
	}
}

func TestSortGroups(t *testing.T) {
	groups := []*Group{
		{Name: "tools"},
		{Name: "base"},
		{Name: "desktop"},
	}

	SortGroups(groups)

	got := []string{groups[0].Name, groups[1].Name, groups[2].Name}
	want := []string{"base", "desktop", "tools"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupSection(t *testing.T) {
	g := &Group{
		Name: "base",
		Sections: []Section{
			{Name: "arch", Packages: []Package{{Name: "vim"}}},
			{Name: "python", Packages: []Package{{Name: "requests"}}},
		},
	}

	if s := g.Section("python"); s == nil || len(s.Packages) != 1 || s.Packages[0].Name != "requests" {
		t.Errorf("Section(python) = %+v, want one package 'requests'", s)
	}
	if s := g.Section("debian"); s != nil {
		t.Errorf("Section(debian) = %+v, want nil", s)
	}
}
