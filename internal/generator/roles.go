package generator

import "fmt"

// fileRole names a template the generator knows how to emit. Template store
// paths are only spelled out in path.
type fileRole int

const (
	roleWorkspaceManifest fileRole = iota
	roleWorkflow
	roleDockerfile
	roleDockerignore
	roleMakefile
	roleSampleMakefile
	roleReadme
	roleSampleReadme
	roleGitignore
	roleToolchain
	roleProto
	roleEnvExample
	roleCompose
	roleSampleCompose
	roleFrontendFile
	roleFrontendCompose
	roleModuleManifest
	roleServiceCLIManifest
	roleSampleCLIManifest
	roleModuleEntry
	roleServiceCLIEntry
	roleSampleCLIEntry
	roleCoreError
	roleCoreExample
	roleRoutes
	roleHandlers
	roleSampleRoutes
	roleSampleHandlers
	roleBuildScript
	roleServer
	roleHTTPClient
	roleBoardFile
	roleE2EFile
	roleDocsFile
)

// path returns the template store path for the role. arg qualifies roles
// that cover a family of files (a workflow name, a module, a frontend file).
func (r fileRole) path(arg string) string {
	switch r {
	case roleWorkspaceManifest:
		return "base/Cargo.workspace.toml"
	case roleWorkflow:
		return "github/" + arg
	case roleDockerfile:
		return "docker/Dockerfile"
	case roleDockerignore:
		return "docker/dockerignore"
	case roleMakefile:
		return "base/Makefile"
	case roleSampleMakefile:
		return "samples/Makefile"
	case roleReadme:
		return "base/README.md"
	case roleSampleReadme:
		return "samples/README.md"
	case roleGitignore:
		return "base/gitignore"
	case roleToolchain:
		return "base/rust-toolchain.toml"
	case roleProto:
		return "proto/service.proto"
	case roleEnvExample:
		return "base/env.example"
	case roleCompose:
		return "base/docker-compose.yml"
	case roleSampleCompose:
		return "samples/docker-compose.yml"
	case roleFrontendFile:
		return "frontend/" + arg
	case roleFrontendCompose:
		return "frontend/" + arg + "/docker-compose.service.yml"
	case roleModuleManifest:
		return "modules/" + arg + "/Cargo.toml"
	case roleServiceCLIManifest:
		return "modules/cli/Cargo_service.toml"
	case roleSampleCLIManifest:
		return "samples/cli/Cargo.toml"
	case roleModuleEntry:
		return "modules/" + arg
	case roleServiceCLIEntry:
		return "modules/cli/main_service.rs"
	case roleSampleCLIEntry:
		return "samples/cli/main.rs"
	case roleCoreError:
		return "modules/core/error.rs"
	case roleCoreExample:
		return "modules/core/examples/basic.rs"
	case roleRoutes:
		return "modules/api/routes.rs"
	case roleHandlers:
		return "modules/api/handlers/mod.rs"
	case roleSampleRoutes:
		return "samples/api/routes.rs"
	case roleSampleHandlers:
		return "samples/api/handlers/mod.rs"
	case roleBuildScript:
		return "modules/api/build.rs"
	case roleServer:
		return "modules/runtime/server.rs"
	case roleHTTPClient:
		return "modules/client/http.rs"
	case roleBoardFile:
		return "samples/board/" + arg
	case roleE2EFile:
		return "samples/e2e/" + arg
	case roleDocsFile:
		return "samples/docs/" + arg
	default:
		panic(fmt.Sprintf("unknown file role %d", int(r)))
	}
}
