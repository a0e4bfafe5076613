package config

// GlobalFlags holds the raw values of the root command's persistent flags.
type GlobalFlags struct {
	Config       string
	Templates    string
	TemplatesRef string
	Verbose      bool

	// Timestamps is nil unless --timestamps was given explicitly.
	Timestamps *bool
}

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created once by the root command and passed into every sub-command
// constructor.
type GlobalConfig struct {
	Flags GlobalFlags

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// File is the config file as loaded. Empty when no file exists.
	File *Config

	// Resolved is the effective configuration after precedence is applied.
	// Nil until PersistentPreRunE has run.
	Resolved *Resolved
}

// Load resolves the config path, reads and validates the file and applies
// precedence. An unreadable or invalid config file is reported but still
// leaves Resolved populated from flags, environment and defaults.
func (g *GlobalConfig) Load() error {
	pathResult, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: g.Flags.Config})
	if err != nil {
		return err
	}
	g.ConfigPath = pathResult.ConfigPath

	file, fileErr := NewLoader().Load(g.ConfigPath)
	if fileErr == nil {
		fileErr = validateConfigFile(g.ConfigPath)
	}
	if fileErr != nil {
		file = &Config{}
	}
	g.File = file

	resolved, err := Resolve(ResolveOptions{
		TemplatesFlag:    g.Flags.Templates,
		TemplatesRefFlag: g.Flags.TemplatesRef,
		TimestampsFlag:   g.Flags.Timestamps,
		Config:           file,
	})
	if err != nil {
		return err
	}
	g.Resolved = resolved
	return fileErr
}

func validateConfigFile(configPath string) error {
	exists, err := ConfigFileExists(configPath)
	if err != nil || !exists {
		return err
	}
	expanded, err := ExpandPath(configPath)
	if err != nil {
		return err
	}
	v, err := NewValidator()
	if err != nil {
		return err
	}
	return v.ValidateFile(expanded)
}
