// Package project models a project to scaffold: its type, options and the
// crates they imply.
package project

import (
	"fmt"
	"strings"
)

// ProjectType selects the base module set and template variants.
type ProjectType string

const (
	TypeService ProjectType = "service"
	TypeCLI     ProjectType = "cli"
	TypeLib     ProjectType = "lib"
	TypeSample  ProjectType = "sample"
)

// ProjectTypes returns every project type in display order.
func ProjectTypes() []ProjectType {
	return []ProjectType{TypeService, TypeCLI, TypeLib, TypeSample}
}

// ParseProjectType converts a command-line selector to a ProjectType.
func ParseProjectType(s string) (ProjectType, error) {
	t := ProjectType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ProjectTypes() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown project type %q", s)
}

func (t ProjectType) String() string {
	return string(t)
}

// PersistenceType is the storage backend. The zero value means none.
type PersistenceType string

const (
	PersistenceNone     PersistenceType = ""
	PersistencePostgres PersistenceType = "postgres"
	PersistenceSqlite   PersistenceType = "sqlite"
	PersistenceFile     PersistenceType = "file"
)

func (p PersistenceType) String() string {
	if p == PersistenceNone {
		return "none"
	}
	return string(p)
}

// FrontendType is the web frontend flavor. The zero value means none.
type FrontendType string

const (
	FrontendNone FrontendType = ""
	FrontendSPA  FrontendType = "spa"
	FrontendSSR  FrontendType = "ssr"
)

func (f FrontendType) String() string {
	if f == FrontendNone {
		return "none"
	}
	return string(f)
}

// Module is a crate under crates/<name> in the generated workspace.
type Module string

const (
	ModuleCore        Module = "core"
	ModuleAPI         Module = "api"
	ModuleRuntime     Module = "runtime"
	ModuleCLI         Module = "cli"
	ModuleClient      Module = "client"
	ModulePersistence Module = "persistence"
)

// Name is the crate directory and template prefix for the module.
func (m Module) Name() string {
	return string(m)
}

func (m Module) String() string {
	return string(m)
}
