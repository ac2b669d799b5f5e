package structure

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// writeFile creates root/rel with content, making parent directories.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// mkdirs creates each root-relative directory.
func mkdirs(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(path, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
	}
}

// nativePaths converts slash-separated paths to the OS form, sorted.
func nativePaths(rels ...string) []string {
	out := make([]string, 0, len(rels))
	for _, r := range rels {
		out = append(out, filepath.FromSlash(r))
	}
	slices.Sort(out)
	return out
}

// sorted returns a sorted copy, so tests do not depend on walk order.
func sorted(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
