// Package config provides configuration loading and management.
package config

// TemplatesConfig selects where templates come from.
type TemplatesConfig struct {
	// Source is "embedded", a local directory or a git URL.
	// Env: BOOTS_TEMPLATES, Default: embedded
	Source string `mapstructure:"source" yaml:"source,omitempty" json:"source,omitempty"`

	// Ref is the branch checked out for git sources.
	// Env: BOOTS_TEMPLATES_REF
	Ref string `mapstructure:"ref" yaml:"ref,omitempty" json:"ref,omitempty"`

	// CacheDir holds clones of git template sources.
	// Env: BOOTS_CACHE_DIR, Default: ~/.boots/cache
	CacheDir string `mapstructure:"cacheDir" yaml:"cacheDir,omitempty" json:"cacheDir,omitempty"`
}

// AuthorConfig overrides the author read from git.
type AuthorConfig struct {
	// Env: BOOTS_AUTHOR_NAME
	Name string `mapstructure:"name" yaml:"name,omitempty" json:"name,omitempty"`

	// Env: BOOTS_AUTHOR_EMAIL
	Email string `mapstructure:"email" yaml:"email,omitempty" json:"email,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the boots CLI configuration.
// Loaded from ~/.boots/config.yaml, validated against the embedded CUE schema.
type Config struct {
	Templates TemplatesConfig `mapstructure:"templates" yaml:"templates,omitempty" json:"templates,omitempty"`
	Author    AuthorConfig    `mapstructure:"author" yaml:"author,omitempty" json:"author,omitempty"`
	Log       LogConfig       `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// Default values.
const (
	DefaultTemplatesSource = "embedded"
	DefaultCacheDir        = "~/.boots/cache"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `boots config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Templates: TemplatesConfig{
			Source:   DefaultTemplatesSource,
			CacheDir: DefaultCacheDir,
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
