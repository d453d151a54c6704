package groups

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/declaro/declaro/internal/model"
)

func writeGroupFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write group file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeGroupFile(t, dir, "tools", "[arch]\nripgrep\nextra/fd\n\n[python]\nhttpie\n")
	writeGroupFile(t, dir, "base", "# core packages\n[arch]\nvim\n")

	groups, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// sorted by name
	if groups[0].Name != "base" || groups[1].Name != "tools" {
		t.Errorf("groups not sorted by name: %s, %s", groups[0].Name, groups[1].Name)
	}

	want := []model.Section{
		{Name: "arch", Packages: []model.Package{
			{Name: "ripgrep"},
			{Name: "fd", Repo: "extra"},
		}},
		{Name: "python", Packages: []model.Package{
			{Name: "httpie"},
		}},
	}
	if diff := cmp.Diff(want, groups[1].Sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	groups, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestLoadRejectsPackageBeforeSection(t *testing.T) {
	dir := t.TempDir()
	writeGroupFile(t, dir, "broken", "vim\n[arch]\n")

	if _, err := Load(dir); err == nil {
		t.Error("expected error for package before section header")
	}
}

func TestLoadRejectsEmptySectionHeader(t *testing.T) {
	dir := t.TempDir()
	writeGroupFile(t, dir, "broken", "[]\nvim\n")

	if _, err := Load(dir); err == nil {
		t.Error("expected error for empty section header")
	}
}

func TestAppendPackageExistingSection(t *testing.T) {
	dir := t.TempDir()
	path := writeGroupFile(t, dir, "tools", "[arch]\nripgrep\n\n[python]\nhttpie\n")
	group := &model.Group{Name: "tools", Path: path}

	err := FileWriter{}.AppendPackage(group, "arch", model.Package{Name: "fd"})
	if err != nil {
		t.Fatalf("AppendPackage() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read group file: %v", err)
	}
	want := "[arch]\nripgrep\nfd\n\n[python]\nhttpie\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", string(data), want)
	}
}

func TestAppendPackageNewSection(t *testing.T) {
	dir := t.TempDir()
	path := writeGroupFile(t, dir, "tools", "[arch]\nripgrep\n")
	group := &model.Group{Name: "tools", Path: path}

	err := FileWriter{}.AppendPackage(group, "flatpak", model.Package{Name: "org.gimp.GIMP"})
	if err != nil {
		t.Fatalf("AppendPackage() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read group file: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "[flatpak]\norg.gimp.GIMP\n") {
		t.Errorf("new section not appended, content:\n%s", got)
	}
	if !strings.HasPrefix(got, "[arch]\nripgrep\n") {
		t.Errorf("existing content disturbed:\n%s", got)
	}
}

func TestAppendPackageEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeGroupFile(t, dir, "fresh", "")
	group := &model.Group{Name: "fresh", Path: path}

	err := FileWriter{}.AppendPackage(group, "arch", model.Package{Name: "vim"})
	if err != nil {
		t.Fatalf("AppendPackage() error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "[arch]\nvim\n" {
		t.Errorf("file content = %q, want %q", string(data), "[arch]\nvim\n")
	}
}

func TestInsertPackageLineRelativeOrder(t *testing.T) {
	content := "[arch]\n\n[python]\nhttpie\n"
	got := insertPackageLine(content, "arch", "vim")
	want := "[arch]\nvim\n\n[python]\nhttpie\n"
	if got != want {
		t.Errorf("insertPackageLine() = %q, want %q", got, want)
	}
}
