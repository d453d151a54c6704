// Package groups loads group files from the groups directory and writes
// package assignments back to them.
//
// A group file is a plain text file named after the group. It contains one
// or more "[backend]" section headers, each followed by one package per
// line. Blank lines and lines starting with '#' are ignored.
package groups

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/declaro/declaro/internal/model"
)

// Load reads every file in dir as one group. The returned groups are
// sorted by name. A missing directory yields an empty group set.
func Load(dir string) ([]*model.Group, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading groups directory: %w", err)
	}

	var groups []*model.Group
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening group file: %w", err)
		}

		group, err := parseGroup(entry.Name(), path, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing group %s: %w", entry.Name(), err)
		}
		groups = append(groups, group)
	}

	model.SortGroups(groups)
	return groups, nil
}

func parseGroup(name, path string, r io.Reader) (*model.Group, error) {
	group := &model.Group{Name: name, Path: path}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section := strings.TrimSpace(line[1 : len(line)-1])
			if section == "" {
				return nil, fmt.Errorf("line %d: empty section header", lineno)
			}
			group.Sections = append(group.Sections, model.Section{Name: section})
			continue
		}

		if len(group.Sections) == 0 {
			return nil, fmt.Errorf("line %d: package %q before any section header", lineno, line)
		}

		current := &group.Sections[len(group.Sections)-1]
		current.Packages = append(current.Packages, model.ParsePackage(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return group, nil
}

// FileWriter persists group assignments by rewriting the group's file.
type FileWriter struct{}

// AppendPackage adds pkg to the named section of the group's file,
// creating the section at the end of the file when it does not exist yet.
// The in-memory group is not modified; groups are reloaded on the next run.
func (FileWriter) AppendPackage(group *model.Group, section string, pkg model.Package) error {
	data, err := os.ReadFile(group.Path)
	if err != nil {
		return fmt.Errorf("reading group file: %w", err)
	}

	content := insertPackageLine(string(data), section, pkg.String())

	if err := os.WriteFile(group.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing group file: %w", err)
	}
	return nil
}

// insertPackageLine places line at the end of the given section, before
// the next section header. Missing section: a new header is appended.
func insertPackageLine(content, section, line string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if content == "" {
		lines = nil
	}

	header := "[" + section + "]"
	insertAt := -1
	inSection := false
	for i, l := range lines {
		trimmed := strings.TrimSpace(l)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			if inSection {
				break
			}
			if trimmed == header {
				inSection = true
				insertAt = i + 1
			}
			continue
		}
		if inSection && trimmed != "" {
			insertAt = i + 1
		}
	}

	if insertAt == -1 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, header, line)
	} else {
		lines = append(lines[:insertAt], append([]string{line}, lines[insertAt:]...)...)
	}

	return strings.Join(lines, "\n") + "\n"
}
