package project

import (
	"context"
	"strings"

	"github.com/1eedaegon/boots/internal/identity"
	"github.com/1eedaegon/boots/internal/output"
)

// SampleOption is the option token that turns any project into the full
// sample application.
const SampleOption = "sample"

// Options lists the recognized option tokens for help text.
var Options = []string{
	"postgres", "sqlite", "file", "persistence",
	"grpc", "http", "client",
	"fe:spa", "fe-spa", "spa", "fe:ssr", "fe-ssr", "ssr",
	SampleOption,
}

// Parser builds Configs from command-line input.
type Parser struct {
	identity identity.Resolver
}

// NewParser returns a parser that fills author fields from resolver.
// A nil resolver leaves them empty.
func NewParser(resolver identity.Resolver) *Parser {
	return &Parser{identity: resolver}
}

// Parse validates name and applies the comma-separated options to the
// defaults for typ. An empty options string yields the defaults.
func (p *Parser) Parse(ctx context.Context, typ ProjectType, name, options string) (*Config, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	cfg := &Config{
		Name:    name,
		Type:    typ,
		HasHTTP: true,
	}

	if p.identity != nil {
		author := p.identity.Resolve(ctx)
		cfg.AuthorName = author.Name
		cfg.AuthorEmail = author.Email
	}

	segments := splitOptions(options)
	if len(segments) == 0 {
		return cfg, nil
	}

	for _, seg := range segments {
		if seg == SampleOption {
			applySample(cfg, segments)
			return cfg, nil
		}
	}

	for _, seg := range segments {
		if err := applyOption(cfg, seg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func splitOptions(options string) []string {
	var segments []string
	for _, seg := range strings.Split(options, ",") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// applySample forces the sample stack and drops every other token.
func applySample(cfg *Config, segments []string) {
	var ignored []string
	for _, seg := range segments {
		if seg != SampleOption {
			ignored = append(ignored, seg)
		}
	}
	if len(ignored) > 0 {
		output.Warn("sample option overrides other options", "ignored", strings.Join(ignored, ","))
	}

	cfg.Persistence = PersistencePostgres
	cfg.Frontend = FrontendSPA
}

func applyOption(cfg *Config, opt string) error {
	switch opt {
	case "postgres":
		cfg.Persistence = PersistencePostgres
	case "sqlite":
		cfg.Persistence = PersistenceSqlite
	case "file":
		cfg.Persistence = PersistenceFile
	case "persistence":
		if cfg.Persistence == PersistenceNone {
			cfg.Persistence = PersistenceFile
		}
	case "grpc":
		cfg.HasGRPC = true
	case "http":
		cfg.HasHTTP = true
	case "client":
		cfg.HasClient = true
	case "fe:spa", "fe-spa", "spa":
		cfg.Frontend = FrontendSPA
	case "fe:ssr", "fe-ssr", "ssr":
		cfg.Frontend = FrontendSSR
	default:
		return &InvalidOptionError{Option: opt}
	}
	return nil
}
