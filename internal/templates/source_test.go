package templates

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/1eedaegon/boots/internal/errors"
)

func TestIsGitURL(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://github.com/1eedaegon/boots-templates", true},
		{"git@github.com:1eedaegon/boots-templates.git", true},
		{"ssh://git@example.com/templates", true},
		{"file:///tmp/templates", true},
		{"../templates.git", true},
		{"./templates", false},
		{"/opt/boots/templates", false},
		{"embedded", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGitURL(tt.source))
		})
	}
}

func TestOpen_Embedded(t *testing.T) {
	for _, source := range []string{"", "embedded", "  embedded "} {
		s, err := Open(context.Background(), SourceOptions{Source: source})
		require.NoError(t, err)
		assert.Equal(t, EmbeddedSourceName, s.Name())
	}
}

func TestOpen_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "base"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base", "Makefile"), []byte("all:\n"), 0o644))

	s, err := Open(context.Background(), SourceOptions{Source: dir})
	require.NoError(t, err)

	got, ok, err := s.Get("base/Makefile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "all:\n", got)
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(context.Background(), SourceOptions{Source: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestOpen_FileIsNotADirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "templates.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	_, err := Open(context.Background(), SourceOptions{Source: f})
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestOpen_GitRequiresCacheDir(t *testing.T) {
	_, err := Open(context.Background(), SourceOptions{Source: "https://example.invalid/templates.git"})
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestOpen_GitUsesCachedClone(t *testing.T) {
	cache := t.TempDir()
	url := "https://example.invalid/boots-templates.git"
	dir := filepath.Join(cache, "templates", cacheKey(url, ""))

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "base"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base", "README.md"), []byte("# {{project_name}}\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("base/README.md")
	require.NoError(t, err)
	_, err = wt.Commit("templates", &git.CommitOptions{
		Author: &object.Signature{Name: "boots", Email: "boots@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	// The clone has no origin remote, so the refresh fails and the cached copy is used.
	s, err := Open(context.Background(), SourceOptions{Source: url, CacheDir: cache})
	require.NoError(t, err)

	got, ok, err := s.Get("base/README.md")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "# {{project_name}}\n", got)

	paths, err := s.List("")
	require.NoError(t, err)
	assert.Equal(t, []string{"base/README.md"}, paths)
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("https://example.com/t.git", "")
	b := cacheKey("https://example.com/t.git", "main")
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, cacheKey("https://example.com/t.git", ""))
}
