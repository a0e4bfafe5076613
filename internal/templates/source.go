package templates

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	oerrors "github.com/1eedaegon/boots/internal/errors"
	"github.com/1eedaegon/boots/internal/output"
)

// SourceOptions selects the backing of the template store.
type SourceOptions struct {
	// Source is "embedded" (or empty), a local directory, or a git URL.
	Source string

	// Ref is the branch to check out for git sources. Empty uses the remote HEAD.
	Ref string

	// CacheDir holds clones of git sources.
	CacheDir string
}

// Open returns the store described by opts.
func Open(ctx context.Context, opts SourceOptions) (*FSStore, error) {
	source := strings.TrimSpace(opts.Source)

	switch {
	case source == "" || source == EmbeddedSourceName:
		return Embedded(), nil
	case IsGitURL(source):
		dir, err := fetchGit(ctx, source, opts.Ref, opts.CacheDir)
		if err != nil {
			return nil, err
		}
		return NewFSStore(source, os.DirFS(dir)), nil
	default:
		return openDir(source)
	}
}

// IsGitURL reports whether source names a git repository rather than a
// local directory.
func IsGitURL(source string) bool {
	for _, prefix := range []string{"https://", "http://", "ssh://", "git://", "file://", "git@"} {
		if strings.HasPrefix(source, prefix) {
			return true
		}
	}
	return strings.HasSuffix(source, ".git")
}

func openDir(dir string) (*FSStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				"template directory does not exist",
				dir,
				"Use --templates embedded or point it at an existing directory",
			)
		}
		return nil, fmt.Errorf("opening template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError("template source is not a directory", dir, "", nil)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return NewFSStore(abs, os.DirFS(abs)), nil
}

// cacheKey derives a stable directory name for a repository and ref.
func cacheKey(url, ref string) string {
	sum := sha256.Sum256([]byte(url + "@" + ref))
	return hex.EncodeToString(sum[:])[:16]
}

// fetchGit ensures a shallow clone of url exists in the cache and returns its
// path. An existing clone is refreshed; a failed refresh falls back to the
// cached copy.
func fetchGit(ctx context.Context, url, ref, cacheDir string) (string, error) {
	if cacheDir == "" {
		return "", oerrors.NewValidationError("template cache directory is not configured", url,
			"Set templates.cacheDir in the config file or BOOTS_CACHE_DIR", nil)
	}

	dir := filepath.Join(cacheDir, "templates", cacheKey(url, ref))

	var result string
	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			refreshClone(ctx, dir, url, ref)
			result = dir
			return nil
		}

		if err := cloneInto(ctx, dir, url, ref); err != nil {
			return err
		}
		result = dir
		return nil
	}, output.WithTitle("Fetching templates from "+url))
	if err != nil {
		return "", err
	}
	return result, nil
}

func cloneInto(ctx context.Context, dir, url, ref string) error {
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return fmt.Errorf("creating template cache: %w", err)
	}

	cloneOpts := &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
	}
	if ref != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(ref)
	}

	output.Debug("cloning template repository", "url", url, "ref", ref, "dir", dir)
	if _, err := git.PlainCloneContext(ctx, dir, false, cloneOpts); err != nil {
		_ = os.RemoveAll(dir)
		return fmt.Errorf("cloning template repository %s: %w", url, err)
	}
	return nil
}

func refreshClone(ctx context.Context, dir, url, ref string) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		output.Warn("cached templates unreadable, using as-is", "dir", dir, "error", err)
		return
	}
	wt, err := repo.Worktree()
	if err != nil {
		output.Warn("cached templates have no worktree, using as-is", "dir", dir, "error", err)
		return
	}

	pullOpts := &git.PullOptions{
		RemoteName:   "origin",
		Depth:        1,
		SingleBranch: true,
		Force:        true,
	}
	if ref != "" {
		pullOpts.ReferenceName = plumbing.NewBranchReferenceName(ref)
	}

	err = wt.PullContext(ctx, pullOpts)
	switch {
	case err == nil:
		output.Debug("refreshed template cache", "url", url, "dir", dir)
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		output.Debug("template cache up to date", "url", url)
	default:
		output.Warn("could not refresh templates, using cached copy", "url", url, "error", err)
	}
}
