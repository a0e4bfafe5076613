package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/1eedaegon/boots/internal/cmdutil"
	"github.com/1eedaegon/boots/internal/config"
	oerrors "github.com/1eedaegon/boots/internal/errors"
	"github.com/1eedaegon/boots/internal/output"
	"github.com/1eedaegon/boots/internal/project"
)

// answers holds the wizard's choices.
type answers struct {
	Type        string
	Name        string
	Persistence string
	Frontend    string
	GRPC        bool
	Client      bool
}

// Options translates the answers into the option string accepted by the
// parser.
func (a answers) Options() string {
	if a.Type == string(project.TypeSample) {
		return project.SampleOption
	}

	var opts []string
	if a.Persistence != "" && a.Persistence != "none" {
		opts = append(opts, a.Persistence)
	}
	if a.Frontend != "" && a.Frontend != "none" {
		opts = append(opts, "fe:"+a.Frontend)
	}
	if a.GRPC {
		opts = append(opts, "grpc")
	}
	if a.Client && a.Type == string(project.TypeCLI) {
		opts = append(opts, "client")
	}
	return strings.Join(opts, ",")
}

// NewNewCmd creates the interactive new command.
func NewNewCmd(cfg *config.GlobalConfig) *cobra.Command {
	var pf cmdutil.ProjectFlags

	c := &cobra.Command{
		Use:   "new",
		Short: "Create a project interactively",
		Long: `Create a project by answering a few questions.

Requires an interactive terminal. The answers are turned into the same
options accepted by the service, cli, lib and sample commands.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if !output.IsInteractive() {
				return cmdutil.Fail(oerrors.NewValidationError(
					"new requires an interactive terminal", "",
					"Use 'boots service|cli|lib|sample <name> --options ...' instead", nil))
			}

			ctx := c.Context()
			a, err := ask(ctx)
			if err != nil {
				return cmdutil.Fail(fmt.Errorf("wizard: %w", err))
			}

			typ, err := project.ParseProjectType(a.Type)
			if err != nil {
				return cmdutil.Fail(err)
			}
			output.Debug("wizard answers", "type", typ, "name", a.Name, "options", a.Options())

			return runGenerate(ctx, c.OutOrStdout(), cfg, typ, a.Name, a.Options(), &pf)
		},
	}

	c.Flags().StringVarP(&pf.Dir, "dir", "d", "",
		"Base directory the project is created in (default: current directory)")
	return c
}

func ask(ctx context.Context) (answers, error) {
	a := answers{Type: string(project.TypeService)}

	typeOptions := make([]huh.Option[string], 0, len(project.ProjectTypes()))
	for _, typ := range project.ProjectTypes() {
		typeOptions = append(typeOptions, huh.NewOption(descriptions[typ], string(typ)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project type").
				Options(typeOptions...).
				Value(&a.Type),
			huh.NewInput().
				Title("Project name").
				Value(&a.Name).
				Validate(project.ValidateName),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Persistence").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("PostgreSQL", "postgres"),
					huh.NewOption("SQLite", "sqlite"),
					huh.NewOption("File", "file"),
				).
				Value(&a.Persistence),
			huh.NewSelect[string]().
				Title("Frontend").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("SPA (Vite + React)", "spa"),
					huh.NewOption("SSR (Next.js)", "ssr"),
				).
				Value(&a.Frontend),
			huh.NewConfirm().
				Title("Add gRPC support?").
				Value(&a.GRPC),
			huh.NewConfirm().
				Title("Add an HTTP client crate? (cli projects only)").
				Value(&a.Client),
		).WithHideFunc(func() bool { return a.Type == string(project.TypeSample) }),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return answers{}, err
	}
	return a, nil
}
