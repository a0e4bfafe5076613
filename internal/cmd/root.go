// Package cmd provides the boots root command.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/1eedaegon/boots/internal/cmd/add"
	configcmd "github.com/1eedaegon/boots/internal/cmd/config"
	projectcmd "github.com/1eedaegon/boots/internal/cmd/project"
	templatescmd "github.com/1eedaegon/boots/internal/cmd/templates"
	"github.com/1eedaegon/boots/internal/config"
	"github.com/1eedaegon/boots/internal/output"
	"github.com/1eedaegon/boots/internal/version"
)

// NewRootCmd creates the root command for the boots CLI.
func NewRootCmd() *cobra.Command {
	cfg := &config.GlobalConfig{}
	var timestamps bool

	rootCmd := &cobra.Command{
		Use:   "boots",
		Short: "Modular Rust project scaffolder",
		Long: `boots creates Rust workspaces from built-in templates.

It provides commands to:
  - Generate service, cli, lib and sample projects
  - Add workflows and benchmarks to an existing project
  - Inspect templates and manage configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if c.Flags().Changed("timestamps") {
				cfg.Flags.Timestamps = output.BoolPtr(timestamps)
			}
			return initializeGlobals(cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Flags.Config, "config", "", "Path to config file (env: BOOTS_CONFIG)")
	flags.BoolVarP(&cfg.Flags.Verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVar(&timestamps, "timestamps", true, "Show timestamps in log output")
	flags.StringVar(&cfg.Flags.Templates, "templates", "",
		"Template source: embedded, a directory or a git URL (env: BOOTS_TEMPLATES)")
	flags.StringVar(&cfg.Flags.TemplatesRef, "templates-ref", "",
		"Branch to use for git template sources (env: BOOTS_TEMPLATES_REF)")

	rootCmd.AddCommand(projectcmd.NewCommands(cfg)...)
	rootCmd.AddCommand(projectcmd.NewNewCmd(cfg))
	rootCmd.AddCommand(add.NewAddCmd(cfg))
	rootCmd.AddCommand(templatescmd.NewTemplatesCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewRootCmdForArgs creates the root command bound to args, the process
// arguments without the program name. Cargo runs `cargo boots ...` as
// `cargo-boots boots ...`, so a leading "boots" is dropped and usage output
// is labelled "cargo boots".
func NewRootCmdForArgs(args []string) *cobra.Command {
	rootCmd := NewRootCmd()
	if len(args) > 0 && args[0] == "boots" {
		args = args[1:]
		rootCmd.Annotations = map[string]string{
			cobra.CommandDisplayNameAnnotation: "cargo boots",
		}
	}
	rootCmd.SetArgs(args)
	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cfg *config.GlobalConfig) error {
	loadErr := cfg.Load()

	logCfg := output.LogConfig{Verbose: cfg.Flags.Verbose}
	if cfg.Resolved != nil {
		logCfg.Timestamps = output.BoolPtr(cfg.Resolved.Timestamps)
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		if cfg.Resolved == nil {
			return loadErr
		}
		// Commands stay usable with a broken config file; config vet reports it.
		output.Warn("ignoring config file", "path", cfg.ConfigPath, "error", loadErr)
	}

	info := version.Get()
	output.Debug("boots started", "version", info.Version, "config", cfg.ConfigPath)
	config.LogResolvedValues(cfg.Resolved.Values)
	return nil
}
