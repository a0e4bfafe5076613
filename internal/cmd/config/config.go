// Package config provides CLI command implementations for the config command group.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1eedaegon/boots/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the boots CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the expanded config file path, preferring the one the
// root command already resolved.
func configPath(cfg *config.GlobalConfig) (string, error) {
	path := cfg.ConfigPath
	if path == "" {
		result, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: cfg.Flags.Config})
		if err != nil {
			return "", fmt.Errorf("resolving config path: %w", err)
		}
		path = result.ConfigPath
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expanded, nil
}
