// Package templates provides the templates command group.
package templates

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1eedaegon/boots/internal/cmdutil"
	"github.com/1eedaegon/boots/internal/config"
	"github.com/1eedaegon/boots/internal/output"
)

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "templates",
		Short: "Inspect the template store",
		Long:  `Inspect the templates boots generates projects from.`,
	}

	c.AddCommand(NewListCmd(cfg))

	return c
}

// NewListCmd creates the templates list command.
func NewListCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list [prefix]",
		Short: "List template paths",
		Long: `List the logical paths of every template in the selected store.

The store is chosen with --templates (embedded, a directory or a git URL).

Examples:
  boots templates list
  boots templates list modules/api
  boots templates list --templates ./my-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			store, err := cmdutil.OpenStore(c.Context(), cfg)
			if err != nil {
				return cmdutil.Fail(err)
			}

			paths, err := store.List(prefix)
			if err != nil {
				return cmdutil.Fail(err)
			}
			output.Debug("listing templates", "source", store.Name(), "prefix", prefix, "count", len(paths))

			w := c.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(w, p)
			}
			return nil
		},
	}
}
