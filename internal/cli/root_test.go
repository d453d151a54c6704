package cli

import (
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"review":    false,
		"sync":      false,
		"clean":     false,
		"unmanaged": false,
		"groups":    false,
		"show":      false,
		"version":   false,
	}

	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestReconcileCommandsGrouped(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		switch c.Name() {
		case "review", "sync", "clean":
			if c.GroupID != "reconcile" {
				t.Errorf("command %q in group %q, want reconcile", c.Name(), c.GroupID)
			}
		case "unmanaged", "groups", "show":
			if c.GroupID != "inspect" {
				t.Errorf("command %q in group %q, want inspect", c.Name(), c.GroupID)
			}
		}
	}
}

func TestPrintCount(t *testing.T) {
	if got := PrintCount(1, "package", "packages"); got != "1 package" {
		t.Errorf("PrintCount(1) = %q", got)
	}
	if got := PrintCount(3, "package", "packages"); got != "3 packages" {
		t.Errorf("PrintCount(3) = %q", got)
	}
}
