// Package generator writes a new project tree from a project.Config.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pelletier/go-toml/v2"

	"github.com/1eedaegon/boots/internal/output"
	"github.com/1eedaegon/boots/internal/project"
	"github.com/1eedaegon/boots/internal/templates"
)

// Dependency snippets injected into module manifests.
const (
	postgresDeps = `sqlx = { version = "0.7", features = ["runtime-tokio", "postgres"] }`
	sqliteDeps   = `sqlx = { version = "0.7", features = ["runtime-tokio", "sqlite"] }`
	grpcDeps     = "tonic = \"0.11\"\nprost = \"0.12\""
	buildDeps    = "\n[build-dependencies]\ntonic-build = \"0.11\""
)

var workflows = []string{"build.yml", "test.yml", "release.yml"}

// Result describes a completed generation.
type Result struct {
	// Root is the project directory relative to the output filesystem root.
	Root string

	// Files lists created files relative to Root, in creation order.
	Files []string
}

// Generator emits one project. It is not safe for reuse across projects.
type Generator struct {
	cfg    *project.Config
	store  templates.Store
	fs     billy.Filesystem
	logger *log.Logger

	// engine holds the whole-project variables shared by most templates.
	engine *templates.Engine
	files  []string
}

// New returns a generator writing cfg's project under the root of fsys.
func New(cfg *project.Config, store templates.Store, fsys billy.Filesystem) *Generator {
	engine := templates.NewEngine().
		Set("project_name", cfg.Name).
		Set("project_name_snake", project.SnakeCase(cfg.Name))

	return &Generator{
		cfg:    cfg,
		store:  store,
		fs:     fsys,
		logger: output.ProjectLogger(cfg.Name),
		engine: engine,
	}
}

// Generate creates the project tree. It fails without writing anything when
// the project directory already exists. Other failures abort immediately and
// leave the files written so far in place.
func (g *Generator) Generate() (*Result, error) {
	if _, err := g.fs.Stat(g.cfg.Name); err == nil {
		return nil, &DirectoryExistsError{Name: g.cfg.Name}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", g.cfg.Name, err)
	}

	steps := []struct {
		name string
		run  func() error
		when bool
	}{
		{"root", func() error { return g.mkdir("") }, true},
		{"workspace", g.createWorkspace, true},
		{"workflows", g.createWorkflows, true},
		{"docker", g.createDocker, true},
		{"makefile", g.createMakefile, true},
		{"readme", g.createReadme, true},
		{"toolchain", g.createToolchainFiles, true},
		{"proto", g.createProto, g.cfg.HasGRPC},
		{"env", g.createEnvExample, g.cfg.HasPersistence()},
		{"frontend", g.createFrontend, g.cfg.HasFrontend()},
		{"compose", g.createCompose, g.cfg.HasFrontend()},
		{"modules", g.createModules, true},
		{"sample", g.createSampleFiles, g.cfg.Type == project.TypeSample},
	}

	for _, step := range steps {
		if !step.when {
			continue
		}
		g.logger.Debug("generating", "step", step.name)
		if err := step.run(); err != nil {
			return nil, err
		}
	}

	return &Result{Root: g.cfg.Name, Files: g.files}, nil
}

func (g *Generator) createWorkspace() error {
	role := roleWorkspaceManifest
	text, ok, err := g.store.Get(role.path(""))
	if err != nil {
		return err
	}
	if !ok {
		return &templates.TemplateError{Path: role.path(""), Reason: "workspace manifest template not found"}
	}

	members := make([]string, 0, len(g.cfg.Modules()))
	for _, m := range g.cfg.Modules() {
		members = append(members, fmt.Sprintf("%q", "crates/"+m.Name()))
	}

	repository := ""
	if g.cfg.AuthorName != "" {
		repository = "https://github.com/" + g.cfg.Name
	}

	author, err := authors(g.cfg.AuthorName, g.cfg.AuthorEmail)
	if err != nil {
		return err
	}

	engine := g.engine.Clone().
		Set("modules", strings.Join(members, ", ")).
		Set("authors", author).
		Set("repository", repository)

	return g.emit(role.path(""), engine.Render(text), "Cargo.toml")
}

func (g *Generator) createWorkflows() error {
	if err := g.mkdir(".github/workflows"); err != nil {
		return err
	}
	for _, name := range workflows {
		if err := g.render(roleWorkflow, name, g.engine, ".github/workflows/"+name); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) createDocker() error {
	if err := g.render(roleDockerfile, "", g.engine, "Dockerfile"); err != nil {
		return err
	}
	return g.render(roleDockerignore, "", g.engine, ".dockerignore")
}

func (g *Generator) createMakefile() error {
	role := roleMakefile
	if g.cfg.Type == project.TypeSample {
		role = roleSampleMakefile
	}
	return g.render(role, "", g.engine, "Makefile")
}

func (g *Generator) createReadme() error {
	role := roleReadme
	if g.cfg.Type == project.TypeSample {
		role = roleSampleReadme
	}
	return g.render(role, "", g.engine, "README.md")
}

func (g *Generator) createToolchainFiles() error {
	if err := g.render(roleGitignore, "", g.engine, ".gitignore"); err != nil {
		return err
	}
	return g.render(roleToolchain, "", g.engine, "rust-toolchain.toml")
}

func (g *Generator) createProto() error {
	if err := g.mkdir("proto"); err != nil {
		return err
	}
	engine := templates.NewEngine().
		Set("project_name", g.cfg.Name).
		Set("project_name_snake", project.SnakeCase(g.cfg.Name)).
		Set("project_name_pascal", project.PascalCase(g.cfg.Name))
	return g.render(roleProto, "", engine, "proto/service.proto")
}

func (g *Generator) createEnvExample() error {
	return g.render(roleEnvExample, "", g.engine, ".env.example")
}

func (g *Generator) createFrontend() error {
	kind := g.cfg.Frontend.String()
	if err := g.mkdir("frontend"); err != nil {
		return err
	}

	if err := g.render(roleFrontendFile, kind+"/package.json", g.engine, "frontend/package.json"); err != nil {
		return err
	}
	for _, f := range []struct{ src, dst string }{
		{"tsconfig.json", "tsconfig.json"},
		{"Dockerfile", "Dockerfile"},
		{"dockerignore", ".dockerignore"},
	} {
		if err := g.copyRaw(roleFrontendFile, kind+"/"+f.src, "frontend/"+f.dst); err != nil {
			return err
		}
	}

	switch g.cfg.Frontend {
	case project.FrontendSPA:
		return g.createSPAFiles()
	case project.FrontendSSR:
		return g.createSSRFiles()
	}
	return nil
}

func (g *Generator) createSPAFiles() error {
	if err := g.copyRaw(roleFrontendFile, "spa/vite.config.ts", "frontend/vite.config.ts"); err != nil {
		return err
	}
	if err := g.render(roleFrontendFile, "spa/index.html", g.engine, "frontend/index.html"); err != nil {
		return err
	}
	if err := g.copyRaw(roleFrontendFile, "spa/nginx.conf", "frontend/nginx.conf"); err != nil {
		return err
	}
	if err := g.mkdir("frontend/src"); err != nil {
		return err
	}
	if err := g.copyRaw(roleFrontendFile, "spa/src/main.tsx", "frontend/src/main.tsx"); err != nil {
		return err
	}
	if err := g.render(roleFrontendFile, "spa/src/App.tsx", g.engine, "frontend/src/App.tsx"); err != nil {
		return err
	}
	return g.copyRaw(roleFrontendFile, "spa/src/vite-env.d.ts", "frontend/src/vite-env.d.ts")
}

func (g *Generator) createSSRFiles() error {
	if err := g.copyRaw(roleFrontendFile, "ssr/next.config.ts", "frontend/next.config.ts"); err != nil {
		return err
	}
	if err := g.mkdir("frontend/app"); err != nil {
		return err
	}
	if err := g.render(roleFrontendFile, "ssr/app/layout.tsx", g.engine, "frontend/app/layout.tsx"); err != nil {
		return err
	}
	if err := g.render(roleFrontendFile, "ssr/app/page.tsx", g.engine, "frontend/app/page.tsx"); err != nil {
		return err
	}
	return g.copyRaw(roleFrontendFile, "ssr/app/globals.css", "frontend/app/globals.css")
}

func (g *Generator) createCompose() error {
	fragment, _, err := g.store.Get(roleFrontendCompose.path(g.cfg.Frontend.String()))
	if err != nil {
		return err
	}
	engine := g.engine.Clone().Set("frontend_service", fragment)
	return g.render(roleCompose, "", engine, "docker-compose.yml")
}

func (g *Generator) createModules() error {
	for _, m := range g.cfg.Modules() {
		if err := g.createModule(m); err != nil {
			return fmt.Errorf("module %s: %w", m, err)
		}
	}
	return nil
}

func (g *Generator) createModule(m project.Module) error {
	dir := "crates/" + m.Name()
	if err := g.mkdir(dir + "/src"); err != nil {
		return err
	}

	if err := g.createModuleManifest(m, dir); err != nil {
		return err
	}
	if err := g.createModuleEntry(m, dir); err != nil {
		return err
	}

	switch m {
	case project.ModuleCore:
		return g.createCoreFiles(dir)
	case project.ModuleAPI:
		return g.createAPIFiles(dir)
	case project.ModuleRuntime:
		return g.render(roleServer, "", g.engine, dir+"/src/server.rs")
	case project.ModuleClient:
		return g.render(roleHTTPClient, "", g.engine, dir+"/src/http.rs")
	case project.ModulePersistence:
		if g.cfg.HasPersistence() {
			if err := g.mkdir(dir + "/migrations"); err != nil {
				return err
			}
			return g.write(dir+"/migrations/.gitkeep", "")
		}
	}
	return nil
}

func (g *Generator) createModuleManifest(m project.Module, dir string) error {
	role := roleModuleManifest
	if m == project.ModuleCLI {
		switch g.cfg.Type {
		case project.TypeService:
			role = roleServiceCLIManifest
		case project.TypeSample:
			role = roleSampleCLIManifest
		}
	}

	engine := templates.NewEngine().
		Set("project_name", g.cfg.Name).
		Set("project_name_snake", project.SnakeCase(g.cfg.Name)).
		Set("module_name", m.Name()).
		Set("persistence_deps", "").
		Set("grpc_deps", "").
		Set("build_deps", "")

	if m == project.ModulePersistence {
		switch g.cfg.Persistence {
		case project.PersistencePostgres:
			engine.Set("persistence_deps", postgresDeps)
		case project.PersistenceSqlite:
			engine.Set("persistence_deps", sqliteDeps)
		}
	}
	if m == project.ModuleAPI && g.cfg.HasGRPC {
		engine.Set("grpc_deps", grpcDeps).Set("build_deps", buildDeps)
	}

	return g.render(role, m.Name(), engine, dir+"/Cargo.toml")
}

func (g *Generator) createModuleEntry(m project.Module, dir string) error {
	file := "lib.rs"
	if m == project.ModuleCLI {
		file = "main.rs"
	}

	role := roleModuleEntry
	if m == project.ModuleCLI {
		switch g.cfg.Type {
		case project.TypeService:
			role = roleServiceCLIEntry
		case project.TypeSample:
			role = roleSampleCLIEntry
		}
	}

	return g.render(role, m.Name()+"/"+file, g.engine, dir+"/src/"+file)
}

func (g *Generator) createCoreFiles(dir string) error {
	if err := g.render(roleCoreError, "", g.engine, dir+"/src/error.rs"); err != nil {
		return err
	}
	if err := g.mkdir(dir + "/examples"); err != nil {
		return err
	}
	return g.render(roleCoreExample, "", g.engine, dir+"/examples/basic.rs")
}

func (g *Generator) createAPIFiles(dir string) error {
	routes, handlers := roleRoutes, roleHandlers
	if g.cfg.Type == project.TypeSample {
		routes, handlers = roleSampleRoutes, roleSampleHandlers
	}

	if err := g.render(routes, "", g.engine, dir+"/src/routes.rs"); err != nil {
		return err
	}
	if err := g.mkdir(dir + "/src/handlers"); err != nil {
		return err
	}
	if err := g.render(handlers, "", g.engine, dir+"/src/handlers/mod.rs"); err != nil {
		return err
	}

	if g.cfg.HasGRPC {
		// build.rs belongs at the crate root, next to Cargo.toml.
		return g.render(roleBuildScript, "", g.engine, dir+"/build.rs")
	}
	return nil
}

func (g *Generator) createSampleFiles() error {
	if err := g.mkdir("crates/core/src/board"); err != nil {
		return err
	}
	for _, f := range []string{"mod.rs", "models.rs", "permission.rs"} {
		if err := g.render(roleBoardFile, f, g.engine, "crates/core/src/board/"+f); err != nil {
			return err
		}
	}

	if err := g.createE2E(); err != nil {
		return err
	}

	if err := g.mkdir("docs"); err != nil {
		return err
	}
	for _, f := range []string{"api.md", "architecture.md", "e2e-testing.md"} {
		if err := g.render(roleDocsFile, f, g.engine, "docs/"+f); err != nil {
			return err
		}
	}

	// Replaces the compose file from the frontend step with one that adds
	// the database and object storage services.
	return g.render(roleSampleCompose, "", g.engine, "docker-compose.yml")
}

func (g *Generator) createE2E() error {
	for _, d := range []string{"e2e/helpers", "e2e/tests", "e2e/fixtures"} {
		if err := g.mkdir(d); err != nil {
			return err
		}
	}
	if err := g.render(roleE2EFile, "playwright.config.ts", g.engine, "e2e/playwright.config.ts"); err != nil {
		return err
	}
	if err := g.render(roleE2EFile, "package.json", g.engine, "e2e/package.json"); err != nil {
		return err
	}
	if err := g.copyRaw(roleE2EFile, "helpers/auth.ts", "e2e/helpers/auth.ts"); err != nil {
		return err
	}
	if err := g.copyRaw(roleE2EFile, "tests/posts.spec.ts", "e2e/tests/posts.spec.ts"); err != nil {
		return err
	}
	return g.write("e2e/fixtures/.gitkeep", "")
}

// render writes the role's template through engine to dest. A missing
// template is skipped.
func (g *Generator) render(role fileRole, arg string, engine *templates.Engine, dest string) error {
	src := role.path(arg)
	text, ok, err := g.store.Get(src)
	if err != nil {
		return err
	}
	if !ok {
		g.logger.Debug("template not found, skipping", "template", src)
		return nil
	}
	return g.emit(src, engine.Render(text), dest)
}

// copyRaw writes the role's template to dest without substitution.
func (g *Generator) copyRaw(role fileRole, arg string, dest string) error {
	src := role.path(arg)
	text, ok, err := g.store.Get(src)
	if err != nil {
		return err
	}
	if !ok {
		g.logger.Debug("template not found, skipping", "template", src)
		return nil
	}
	return g.write(dest, text)
}

func (g *Generator) emit(src, content, dest string) error {
	if err := templates.ValidateContent(src, content); err != nil {
		return err
	}
	return g.write(dest, content)
}

func (g *Generator) mkdir(rel string) error {
	p := path.Join(g.cfg.Name, rel)
	if err := g.fs.MkdirAll(p, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", p, err)
	}
	return nil
}

func (g *Generator) write(rel, content string) error {
	p := path.Join(g.cfg.Name, rel)
	if err := util.WriteFile(g.fs, p, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	if !slices.Contains(g.files, rel) {
		g.files = append(g.files, rel)
	}
	g.logger.Debug("created file", "path", rel)
	return nil
}

// authors renders the workspace authors array body as a single TOML
// string, or nothing when no author is known.
func authors(name, email string) (string, error) {
	var author string
	switch {
	case name != "" && email != "":
		author = fmt.Sprintf("%s <%s>", name, email)
	case name != "":
		author = name
	case email != "":
		author = "<" + email + ">"
	default:
		return "", nil
	}

	b, err := toml.Marshal(struct {
		Author string `toml:"author"`
	}{author})
	if err != nil {
		return "", fmt.Errorf("encoding author %q: %w", author, err)
	}
	return strings.TrimSpace(strings.TrimPrefix(string(b), "author = ")), nil
}
