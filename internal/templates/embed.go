// Package templates holds the template store, its backing sources and the
// {{key}} substitution engine used to render project files.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assetsFS embed.FS

// EmbeddedSourceName identifies the built-in template set.
const EmbeddedSourceName = "embedded"

// Embedded returns the store backed by the templates compiled into the binary.
func Embedded() *FSStore {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}
	return NewFSStore(EmbeddedSourceName, sub)
}
