// Package adder appends single features to an existing generated project.
package adder

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/1eedaegon/boots/internal/errors"
	"github.com/1eedaegon/boots/internal/output"
	"github.com/1eedaegon/boots/internal/templates"
)

const (
	coreManifest     = "crates/core/Cargo.toml"
	benchFile        = "crates/core/benches/benchmark.rs"
	benchTemplate    = "add/benches/benchmark.rs"
	criterionVersion = "0.5"
)

// Target is something that can be added to a project.
type Target struct {
	Name        string
	Description string
}

var targets = []Target{
	{Name: "gh:test", Description: "GitHub workflow running cargo test"},
	{Name: "gh:build", Description: "GitHub workflow running fmt, clippy and build"},
	{Name: "gh:semver", Description: "GitHub workflow tagging releases on main"},
	{Name: "test:perf", Description: "criterion benchmark in crates/core"},
}

// Targets returns the supported targets.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets)
	return out
}

// AlreadyExistsError reports that the file a target creates is present.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("already exists: %s", e.Path)
}

func (e *AlreadyExistsError) Unwrap() error {
	return oerrors.ErrAlreadyExists
}

// UnknownTargetError reports an unsupported target name.
type UnknownTargetError struct {
	Target string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target: %s", e.Target)
}

func (e *UnknownTargetError) Unwrap() error {
	return oerrors.ErrValidation
}

// Adder writes targets into the project rooted at its filesystem.
type Adder struct {
	store templates.Store
	fs    billy.Filesystem
}

// New returns an adder for the project at the root of fsys.
func New(store templates.Store, fsys billy.Filesystem) *Adder {
	return &Adder{store: store, fs: fsys}
}

// Add applies target and returns the files it created or modified.
func (a *Adder) Add(target string) ([]string, error) {
	switch target {
	case "gh:test", "gh:build", "gh:semver":
		name := strings.TrimPrefix(target, "gh:") + ".yml"
		return a.addWorkflow(name)
	case "test:perf":
		return a.addBenchmark()
	default:
		return nil, &UnknownTargetError{Target: target}
	}
}

func (a *Adder) addWorkflow(name string) ([]string, error) {
	dest := ".github/workflows/" + name
	if err := a.ensureAbsent(dest); err != nil {
		return nil, err
	}

	content, err := a.template("add/github/" + name)
	if err != nil {
		return nil, err
	}
	if err := a.write(dest, content); err != nil {
		return nil, err
	}
	return []string{dest}, nil
}

func (a *Adder) addBenchmark() ([]string, error) {
	if err := a.ensureAbsent(benchFile); err != nil {
		return nil, err
	}

	content, err := a.template(benchTemplate)
	if err != nil {
		return nil, err
	}

	manifest, err := util.ReadFile(a.fs, coreManifest)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				"core crate manifest not found",
				coreManifest,
				"Run boots add from the root of a generated project",
			)
		}
		return nil, fmt.Errorf("reading %s: %w", coreManifest, err)
	}

	updated, err := addCriterion(string(manifest))
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", coreManifest, err)
	}

	if err := a.write(coreManifest, updated); err != nil {
		return nil, err
	}
	if err := a.write(benchFile, content); err != nil {
		return nil, err
	}
	return []string{coreManifest, benchFile}, nil
}

func (a *Adder) ensureAbsent(p string) error {
	if _, err := a.fs.Stat(p); err == nil {
		return &AlreadyExistsError{Path: p}
	}
	return nil
}

func (a *Adder) template(p string) (string, error) {
	text, ok, err := a.store.Get(p)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &templates.TemplateError{Path: p, Reason: "template not found"}
	}
	return text, nil
}

func (a *Adder) write(p, content string) error {
	if err := util.WriteFile(a.fs, p, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	output.Debug("wrote file", "path", p)
	return nil
}

// cargoManifest is the part of Cargo.toml the benchmark target inspects.
type cargoManifest struct {
	DevDependencies map[string]any   `toml:"dev-dependencies"`
	Bench           []map[string]any `toml:"bench"`
}

// addCriterion adds the criterion dev-dependency and a benchmark target to a
// Cargo manifest when missing. Edits are textual so existing formatting and
// comments survive.
func addCriterion(manifest string) (string, error) {
	var m cargoManifest
	if err := toml.Unmarshal([]byte(manifest), &m); err != nil {
		return "", fmt.Errorf("parsing manifest: %w", err)
	}

	out := manifest
	if _, ok := m.DevDependencies["criterion"]; !ok {
		dep := fmt.Sprintf("criterion = %q", criterionVersion)
		if m.DevDependencies == nil {
			out = appendBlock(out, "[dev-dependencies]\n"+dep+"\n")
		} else {
			var inserted bool
			out, inserted = insertAfterHeader(out, "[dev-dependencies]", dep)
			if !inserted {
				return "", errors.New("dev-dependencies is not declared as a [dev-dependencies] table")
			}
		}
	}

	if len(m.Bench) == 0 {
		out = appendBlock(out, "[[bench]]\nname = \"benchmark\"\nharness = false\n")
	}

	var check map[string]any
	if err := toml.Unmarshal([]byte(out), &check); err != nil {
		return "", fmt.Errorf("edited manifest is invalid: %w", err)
	}
	return out, nil
}

func appendBlock(doc, block string) string {
	if doc != "" && !strings.HasSuffix(doc, "\n") {
		doc += "\n"
	}
	if doc != "" {
		doc += "\n"
	}
	return doc + block
}

func insertAfterHeader(doc, header, line string) (string, bool) {
	var sb strings.Builder
	inserted := false

	for _, l := range strings.SplitAfter(doc, "\n") {
		sb.WriteString(l)
		if !inserted && strings.TrimSpace(l) == header {
			if !strings.HasSuffix(l, "\n") {
				sb.WriteString("\n")
			}
			sb.WriteString(line)
			sb.WriteString("\n")
			inserted = true
		}
	}
	return sb.String(), inserted
}
