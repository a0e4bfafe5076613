package templates

import (
	"sort"
	"strings"
)

// Engine substitutes {{key}} tokens with registered values.
//
// Rendering is a single pass over the input: substituted values are never
// re-scanned, and tokens without a registered key are left verbatim.
type Engine struct {
	vars map[string]string
}

// NewEngine returns an engine with no variables registered.
func NewEngine() *Engine {
	return &Engine{vars: make(map[string]string)}
}

// Set registers or overwrites a variable and returns the engine for chaining.
func (e *Engine) Set(key, value string) *Engine {
	e.vars[key] = value
	return e
}

// Get returns the value registered for key.
func (e *Engine) Get(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Clone returns an independent copy of the engine.
func (e *Engine) Clone() *Engine {
	c := NewEngine()
	for k, v := range e.vars {
		c.vars[k] = v
	}
	return c
}

// Render returns text with every registered token replaced.
func (e *Engine) Render(text string) string {
	if len(e.vars) == 0 {
		return text
	}

	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, token(k), e.vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func token(key string) string {
	return "{{" + key + "}}"
}
