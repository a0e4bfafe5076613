package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/1eedaegon/boots/internal/cmdutil"
	"github.com/1eedaegon/boots/internal/config"
	oerrors "github.com/1eedaegon/boots/internal/errors"
	"github.com/1eedaegon/boots/internal/output"
)

const configHeader = `# boots CLI configuration
#
# templates.source  embedded | <directory> | <git url>   (env: BOOTS_TEMPLATES)
# templates.ref     branch for git sources             (env: BOOTS_TEMPLATES_REF)
# author.name/email override git user.name/user.email  (env: BOOTS_AUTHOR_NAME, BOOTS_AUTHOR_EMAIL)

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new boots configuration file",
		Long: `Create a new boots configuration file with default values.

The configuration file is created at ~/.boots/config.yaml by default.
Use --config or BOOTS_CONFIG to choose a different location.

Examples:
  # Initialize configuration
  boots config init

  # Overwrite existing configuration
  boots config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *config.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdutil.Fail(err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("checking config file: %w", err))
	}
	if exists && !force {
		return cmdutil.Fail(&oerrors.DetailError{
			Type:     "already exists",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrAlreadyExists,
		})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.Fail(fmt.Errorf("creating config directory: %w", err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("marshaling config: %w", err))
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return cmdutil.Fail(fmt.Errorf("writing config file: %w", err))
	}

	output.Debug("config written", "path", path, "force", force)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}
