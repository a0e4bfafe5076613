// Package cmdutil provides shared command utilities for the boots
// subcommands. It centralizes flag groups, template store and identity
// wiring, exit-code mapping and result output.
package cmdutil

import (
	"os"

	"github.com/spf13/cobra"
)

// ProjectFlags holds flags common to the project generation commands
// (service, cli, lib, sample).
type ProjectFlags struct {
	Options string
	Dir     string
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Options, "options", "o", "",
		"Comma-separated options (e.g. postgres,grpc,fe:spa)")
	cmd.Flags().StringVarP(&f.Dir, "dir", "d", "",
		"Base directory the project is created in (default: current directory)")
}

// BaseDir returns the directory projects are created in, defaulting to the
// current working directory.
func (f *ProjectFlags) BaseDir() (string, error) {
	if f.Dir != "" {
		return f.Dir, nil
	}
	return os.Getwd()
}

// TargetDirFlags holds the --dir flag for commands that modify an existing
// project (add).
type TargetDirFlags struct {
	Dir string
}

// AddTo registers the target directory flag on the given cobra command.
func (f *TargetDirFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Dir, "dir", "d", ".",
		"Project directory to modify")
}
