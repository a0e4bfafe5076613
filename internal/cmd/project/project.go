// Package project provides the project generation commands.
package project

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/1eedaegon/boots/internal/cmdutil"
	"github.com/1eedaegon/boots/internal/config"
	"github.com/1eedaegon/boots/internal/generator"
	"github.com/1eedaegon/boots/internal/project"
)

var descriptions = map[project.ProjectType]string{
	project.TypeService: "Create a service workspace (core, api, runtime, cli)",
	project.TypeCLI:     "Create a command-line application workspace (core, cli)",
	project.TypeLib:     "Create a library workspace (core)",
	project.TypeSample:  "Create the full-stack board sample application",
}

// NewCommands returns one generation command per project type.
func NewCommands(cfg *config.GlobalConfig) []*cobra.Command {
	var cmds []*cobra.Command
	for _, typ := range project.ProjectTypes() {
		cmds = append(cmds, NewProjectCmd(cfg, typ))
	}
	return cmds
}

// NewProjectCmd creates the generation command for typ.
func NewProjectCmd(cfg *config.GlobalConfig, typ project.ProjectType) *cobra.Command {
	var pf cmdutil.ProjectFlags

	c := &cobra.Command{
		Use:   fmt.Sprintf("%s <name>", typ),
		Short: descriptions[typ],
		Long: fmt.Sprintf(`%s.

The project is created in <dir>/<name> and must not exist yet.

Options (comma-separated, later tokens win):
  %s

Examples:
  boots %s my-project
  boots %s my-project --options postgres,grpc
  boots %s my-project -o fe:spa -d ./projects`,
			descriptions[typ], strings.Join(project.Options, ", "), typ, typ, typ),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			options := pf.Options
			if typ == project.TypeSample && !c.Flags().Changed("options") {
				options = project.SampleOption
			}
			return runGenerate(c.Context(), c.OutOrStdout(), cfg, typ, args[0], options, &pf)
		},
	}

	pf.AddTo(c)
	return c
}

func runGenerate(ctx context.Context, w io.Writer, cfg *config.GlobalConfig, typ project.ProjectType, name, options string, pf *cmdutil.ProjectFlags) error {
	parser := project.NewParser(cmdutil.AuthorResolver(cfg))
	pcfg, err := parser.Parse(ctx, typ, name, options)
	if err != nil {
		return cmdutil.Fail(err)
	}

	baseDir, err := pf.BaseDir()
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("resolving base directory: %w", err))
	}

	return generate(ctx, w, cfg, pcfg, baseDir)
}

// generate writes pcfg's project under baseDir and prints the result.
func generate(ctx context.Context, w io.Writer, cfg *config.GlobalConfig, pcfg *project.Config, baseDir string) error {
	store, err := cmdutil.OpenStore(ctx, cfg)
	if err != nil {
		return cmdutil.Fail(err)
	}

	result, err := generator.New(pcfg, store, osfs.New(baseDir)).Generate()
	if err != nil {
		return cmdutil.Fail(err)
	}

	cmdutil.PrintProjectResult(w, result)
	return nil
}
