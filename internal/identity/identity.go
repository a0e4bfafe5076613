// Package identity resolves the author recorded in generated manifests.
//
// Lookups are best-effort: failures produce an empty Author, never an error.
package identity

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/go-git/go-git/v5/config"

	"github.com/1eedaegon/boots/internal/output"
)

// DefaultTimeout bounds the git subprocess fallback.
const DefaultTimeout = 2 * time.Second

// Author is a name/email pair. Either field may be empty.
type Author struct {
	Name  string
	Email string
}

// IsZero reports whether neither field is set.
func (a Author) IsZero() bool {
	return a.Name == "" && a.Email == ""
}

// Resolver looks up the author for new projects.
type Resolver interface {
	Resolve(ctx context.Context) Author
}

// Static always resolves to the same author.
type Static Author

// Resolve implements Resolver.
func (s Static) Resolve(context.Context) Author {
	return Author(s)
}

// Override replaces fields of the base resolver's answer with non-empty
// configured values. The base is not consulted when both fields are set.
type Override struct {
	Base  Resolver
	Name  string
	Email string
}

// Resolve implements Resolver.
func (o Override) Resolve(ctx context.Context) Author {
	if o.Name != "" && o.Email != "" {
		return Author{Name: o.Name, Email: o.Email}
	}

	var a Author
	if o.Base != nil {
		a = o.Base.Resolve(ctx)
	}
	if o.Name != "" {
		a.Name = o.Name
	}
	if o.Email != "" {
		a.Email = o.Email
	}
	return a
}

// GitResolver reads user.name and user.email from the global git
// configuration, falling back to the git binary for values the config
// files do not provide.
type GitResolver struct {
	// Timeout bounds each git subprocess call.
	Timeout time.Duration

	loadConfig func() (*config.Config, error)
	runGit     func(ctx context.Context, key string) (string, error)
}

var _ Resolver = (*GitResolver)(nil)

// NewGitResolver returns a resolver using the user's global git config.
func NewGitResolver() *GitResolver {
	return &GitResolver{
		Timeout: DefaultTimeout,
		loadConfig: func() (*config.Config, error) {
			return config.LoadConfig(config.GlobalScope)
		},
		runGit: gitConfigGet,
	}
}

// Resolve implements Resolver.
func (r *GitResolver) Resolve(ctx context.Context) Author {
	var a Author

	if r.loadConfig != nil {
		cfg, err := r.loadConfig()
		if err != nil {
			output.Debug("reading global git config failed", "error", err)
		} else {
			a.Name = cfg.User.Name
			a.Email = cfg.User.Email
		}
	}

	if a.Name == "" {
		a.Name = r.lookup(ctx, "user.name")
	}
	if a.Email == "" {
		a.Email = r.lookup(ctx, "user.email")
	}
	return a
}

func (r *GitResolver) lookup(ctx context.Context, key string) string {
	if r.runGit == nil {
		return ""
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	value, err := r.runGit(ctx, key)
	if err != nil {
		output.Debug("git config lookup failed", "key", key, "error", err)
		return ""
	}
	return value
}

func gitConfigGet(ctx context.Context, key string) (string, error) {
	out, err := exec.CommandContext(ctx, "git", "config", "--get", key).Output()
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(out)), nil
}
