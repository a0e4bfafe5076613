package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1eedaegon/boots/internal/cmdutil"
	"github.com/1eedaegon/boots/internal/config"
	oerrors "github.com/1eedaegon/boots/internal/errors"
	"github.com/1eedaegon/boots/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the boots configuration file",
		Long: `Validate the boots configuration file against the embedded schema.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Only known keys are present and values have the right shape

The config path is resolved using precedence:
  --config flag > BOOTS_CONFIG env > ~/.boots/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *config.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdutil.Fail(err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("checking config file: %w", err))
	}
	if !exists {
		return cmdutil.Fail(oerrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'boots config init' to create default configuration"))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("creating validator: %w", err))
	}

	output.Debug("validating config", "path", path)
	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			w := c.ErrOrStderr()
			fmt.Fprintln(w, "Error: config validation failed")
			fmt.Fprintf(w, "  File: %s\n\n", path)
			for _, e := range verrs {
				fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{
				Code:    oerrors.ExitValidationError,
				Err:     fmt.Errorf("%w: %w", oerrors.ErrValidation, err),
				Printed: true,
			}
		}
		return cmdutil.Fail(fmt.Errorf("validating config: %w", err))
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
