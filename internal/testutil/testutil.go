// Package testutil provides test helpers for boots tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/go-git/go-billy/v5"

	"github.com/1eedaegon/boots/internal/templates"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of p in fs, failing the test if it is missing.
func ReadFile(t *testing.T, fs billy.Filesystem, p string) string {
	t.Helper()
	f, err := fs.Open(p)
	if err != nil {
		t.Fatalf("failed to open %s: %v", p, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("failed to read %s: %v", p, err)
	}
	return string(data)
}

// Exists reports whether p exists in fs.
func Exists(fs billy.Filesystem, p string) bool {
	_, err := fs.Stat(p)
	return err == nil
}

// DirNames returns the sorted entry names of directory p in fs.
func DirNames(t *testing.T, fs billy.Filesystem, p string) []string {
	t.Helper()
	infos, err := fs.ReadDir(p)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", p, err)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	sort.Strings(names)
	return names
}

// MapStore returns an in-memory template store holding files, keyed by
// logical template path.
func MapStore(files map[string]string) *templates.FSStore {
	fsys := fstest.MapFS{}
	for p, content := range files {
		fsys[p] = &fstest.MapFile{Data: []byte(content)}
	}
	return templates.NewFSStore("test", fsys)
}
