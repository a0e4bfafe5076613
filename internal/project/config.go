package project

// Config is the validated description of one project to generate.
// It is built once by a Parser and not modified afterwards.
type Config struct {
	Name        string
	Type        ProjectType
	Persistence PersistenceType
	Frontend    FrontendType
	HasGRPC     bool
	HasHTTP     bool
	HasClient   bool
	AuthorName  string
	AuthorEmail string
}

// HasPersistence reports whether a storage backend is selected.
func (c *Config) HasPersistence() bool {
	return c.Persistence != PersistenceNone
}

// HasFrontend reports whether a frontend is selected.
func (c *Config) HasFrontend() bool {
	return c.Frontend != FrontendNone
}

// Modules returns the crates to scaffold in workspace member order.
func (c *Config) Modules() []Module {
	modules := []Module{ModuleCore}

	switch c.Type {
	case TypeService:
		modules = append(modules, ModuleAPI, ModuleRuntime, ModuleCLI)
	case TypeCLI:
		modules = append(modules, ModuleCLI)
		if c.HasClient {
			modules = append(modules, ModuleClient)
		}
	case TypeSample:
		return append(modules, ModuleAPI, ModuleRuntime, ModuleCLI, ModulePersistence)
	}

	if c.HasPersistence() {
		modules = append(modules, ModulePersistence)
	}
	return modules
}
