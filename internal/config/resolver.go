package config

import (
	"os"

	"github.com/1eedaegon/boots/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one configuration value and where it came from.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions carries the inputs to Resolve.
type ResolveOptions struct {
	// TemplatesFlag is the --templates flag value (empty if not set).
	TemplatesFlag string
	// TemplatesRefFlag is the --templates-ref flag value (empty if not set).
	TemplatesRefFlag string
	// TimestampsFlag is the --timestamps flag value (nil if not set).
	TimestampsFlag *bool
	// Config is the loaded config file. Nil is treated as empty.
	Config *Config
}

// Resolved is the effective configuration after applying precedence.
type Resolved struct {
	TemplatesSource string
	TemplatesRef    string
	CacheDir        string
	AuthorName      string
	AuthorEmail     string
	Timestamps      bool

	// Values lists every resolved key for verbose logging.
	Values []ResolvedValue
}

// Resolve applies precedence (1) flag, (2) BOOTS_* env, (3) config file,
// (4) default to every setting.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	cacheDefault := DefaultCacheDir
	if paths, err := DefaultPaths(); err == nil {
		cacheDefault = paths.CacheDir
	}

	values := []ResolvedValue{
		resolveString("templates.source", opts.TemplatesFlag, EnvTemplates, cfg.Templates.Source, DefaultTemplatesSource),
		resolveString("templates.ref", opts.TemplatesRefFlag, EnvTemplatesRef, cfg.Templates.Ref, ""),
		resolveString("templates.cacheDir", "", EnvCacheDir, cfg.Templates.CacheDir, cacheDefault),
		resolveString("author.name", "", EnvAuthorName, cfg.Author.Name, ""),
		resolveString("author.email", "", EnvAuthorEmail, cfg.Author.Email, ""),
	}

	cacheDir, err := ExpandPath(values[2].Value)
	if err != nil {
		return nil, err
	}

	timestamps := ResolvedValue{Key: "log.timestamps", Value: "true", Source: SourceDefault, Shadowed: map[ConfigSource]string{}}
	ts := true
	switch {
	case opts.TimestampsFlag != nil:
		ts = *opts.TimestampsFlag
		timestamps.Source = SourceFlag
		if cfg.Log.Timestamps != nil {
			timestamps.Shadowed[SourceConfig] = boolString(*cfg.Log.Timestamps)
		}
	case cfg.Log.Timestamps != nil:
		ts = *cfg.Log.Timestamps
		timestamps.Source = SourceConfig
	}
	timestamps.Value = boolString(ts)
	values = append(values, timestamps)

	return &Resolved{
		TemplatesSource: values[0].Value,
		TemplatesRef:    values[1].Value,
		CacheDir:        cacheDir,
		AuthorName:      values[3].Value,
		AuthorEmail:     values[4].Value,
		Timestamps:      ts,
		Values:          values,
	}, nil
}

// resolveString picks the first non-empty of flag, env, config and default.
func resolveString(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	envValue := os.Getenv(envVar)

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	if result.Source == "" {
		result.Value = defaultValue
		result.Source = SourceDefault
	}
	return result
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BOOTS_CONFIG env, (3) ~/.boots/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	if opts.FlagValue != "" {
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
