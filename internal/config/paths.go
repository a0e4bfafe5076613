package config

import (
	"os"
	"path/filepath"
)

// Environment variables read by the CLI.
const (
	EnvConfig       = "BOOTS_CONFIG"
	EnvTemplates    = "BOOTS_TEMPLATES"
	EnvTemplatesRef = "BOOTS_TEMPLATES_REF"
	EnvCacheDir     = "BOOTS_CACHE_DIR"
	EnvAuthorName   = "BOOTS_AUTHOR_NAME"
	EnvAuthorEmail  = "BOOTS_AUTHOR_EMAIL"
)

// Paths contains standard filesystem paths for boots.
type Paths struct {
	// ConfigFile is the path to the config file (~/.boots/config.yaml).
	ConfigFile string

	// CacheDir is the path to the cache directory (~/.boots/cache).
	CacheDir string

	// HomeDir is the boots home directory (~/.boots).
	HomeDir string
}

// DefaultPaths returns the default paths for boots.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	bootsHome := filepath.Join(homeDir, ".boots")

	return &Paths{
		ConfigFile: filepath.Join(bootsHome, "config.yaml"),
		CacheDir:   filepath.Join(bootsHome, "cache"),
		HomeDir:    bootsHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If BOOTS_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
