package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"unicode/utf8"

	oerrors "github.com/1eedaegon/boots/internal/errors"
)

// Store is a read-only lookup from a logical template path to its raw text.
type Store interface {
	// Get returns the template at path. A missing template returns ok=false
	// and a nil error.
	Get(path string) (text string, ok bool, err error)

	// List returns the sorted logical paths that start with prefix.
	List(prefix string) ([]string, error)
}

// TemplateError reports a template that exists but cannot be used.
type TemplateError struct {
	Path   string
	Reason string
	Err    error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("template %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the template sentinel and the underlying cause.
func (e *TemplateError) Unwrap() []error {
	if e.Err == nil {
		return []error{oerrors.ErrTemplate}
	}
	return []error{oerrors.ErrTemplate, e.Err}
}

// FSStore serves templates from an fs.FS.
type FSStore struct {
	name string
	fsys fs.FS
}

var _ Store = (*FSStore)(nil)

// NewFSStore wraps fsys. Name identifies the backing source in logs.
func NewFSStore(name string, fsys fs.FS) *FSStore {
	return &FSStore{name: name, fsys: fsys}
}

// Name returns the source description.
func (s *FSStore) Name() string {
	return s.name
}

// Get implements Store.
func (s *FSStore) Get(path string) (string, bool, error) {
	if !fs.ValidPath(path) {
		return "", false, nil
	}

	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isDir(s.fsys, path) {
			return "", false, nil
		}
		return "", false, &TemplateError{Path: path, Reason: "read failed", Err: err}
	}

	if !utf8.Valid(data) {
		return "", false, &TemplateError{Path: path, Reason: "content is not valid UTF-8"}
	}
	return string(data), true, nil
}

// List implements Store.
func (s *FSStore) List(prefix string) ([]string, error) {
	var paths []string
	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(path, prefix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", s.name, err)
	}

	sort.Strings(paths)
	return paths, nil
}

func isDir(fsys fs.FS, path string) bool {
	info, err := fs.Stat(fsys, path)
	return err == nil && info.IsDir()
}
