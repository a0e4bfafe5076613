package cmdutil

import (
	"context"

	"github.com/1eedaegon/boots/internal/config"
	"github.com/1eedaegon/boots/internal/identity"
	"github.com/1eedaegon/boots/internal/output"
	"github.com/1eedaegon/boots/internal/templates"
)

// OpenStore opens the template store selected by the resolved configuration.
// Without a resolved configuration the embedded templates are used.
func OpenStore(ctx context.Context, cfg *config.GlobalConfig) (*templates.FSStore, error) {
	opts := templates.SourceOptions{Source: templates.EmbeddedSourceName}
	if cfg != nil && cfg.Resolved != nil {
		opts = templates.SourceOptions{
			Source:   cfg.Resolved.TemplatesSource,
			Ref:      cfg.Resolved.TemplatesRef,
			CacheDir: cfg.Resolved.CacheDir,
		}
	}

	store, err := templates.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	output.Debug("using templates", "source", store.Name())
	return store, nil
}

// AuthorResolver returns the identity resolver for generated manifests:
// the global git configuration, overridden by configured author values.
func AuthorResolver(cfg *config.GlobalConfig) identity.Resolver {
	base := identity.NewGitResolver()
	if cfg == nil || cfg.Resolved == nil {
		return base
	}
	return identity.Override{
		Base:  base,
		Name:  cfg.Resolved.AuthorName,
		Email: cfg.Resolved.AuthorEmail,
	}
}
