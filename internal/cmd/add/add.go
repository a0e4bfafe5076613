// Package add provides the add command.
package add

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/1eedaegon/boots/internal/adder"
	"github.com/1eedaegon/boots/internal/cmdutil"
	"github.com/1eedaegon/boots/internal/config"
	oerrors "github.com/1eedaegon/boots/internal/errors"
	"github.com/1eedaegon/boots/internal/output"
)

// NewAddCmd creates the add command.
func NewAddCmd(cfg *config.GlobalConfig) *cobra.Command {
	var (
		tf       cmdutil.TargetDirFlags
		listFlag bool
	)

	c := &cobra.Command{
		Use:   "add <target>",
		Short: "Add a feature to an existing project",
		Long: `Add a single feature to a project generated by boots.

Targets:
  gh:test     GitHub workflow running cargo test
  gh:build    GitHub workflow running fmt, clippy and build
  gh:semver   GitHub workflow tagging releases on main
  test:perf   criterion benchmark in crates/core

Files that already exist are never overwritten.

Examples:
  boots add gh:test
  boots add test:perf --dir ./my-project
  boots add --list`,
		Args: func(c *cobra.Command, args []string) error {
			if listFlag {
				return cobra.NoArgs(c, args)
			}
			return cobra.ExactArgs(1)(c, args)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if listFlag {
				printTargets(c.OutOrStdout())
				return nil
			}
			return runAdd(c, cfg, args[0], tf.Dir)
		},
	}

	tf.AddTo(c)
	c.Flags().BoolVar(&listFlag, "list", false, "List available targets")
	return c
}

func runAdd(c *cobra.Command, cfg *config.GlobalConfig, target, dir string) error {
	store, err := cmdutil.OpenStore(c.Context(), cfg)
	if err != nil {
		return cmdutil.Fail(err)
	}

	files, err := adder.New(store, osfs.New(dir)).Add(target)
	if err != nil {
		var unknown *adder.UnknownTargetError
		if errors.As(err, &unknown) {
			return cmdutil.Fail(oerrors.NewValidationError(err.Error(), "",
				"Run 'boots add --list' to see available targets", err))
		}
		return cmdutil.Fail(err)
	}

	output.Debug("target added", "target", target, "dir", dir, "files", len(files))
	cmdutil.PrintAdded(c.OutOrStdout(), target, files)
	return nil
}

func printTargets(w io.Writer) {
	tbl := output.NewTable("TARGET", "DESCRIPTION")
	for _, t := range adder.Targets() {
		tbl.Row(t.Name, t.Description)
	}
	fmt.Fprintln(w, tbl.String())
}
