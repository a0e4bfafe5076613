package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSource []byte

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value

	// fields holds every dotted path #Config declares.
	fields map[string]bool
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	fields := map[string]bool{}
	if err := collectFields(schema, "", fields); err != nil {
		return nil, fmt.Errorf("reading schema fields: %w", err)
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
		fields: fields,
	}, nil
}

func collectFields(v cue.Value, prefix string, fields map[string]bool) error {
	iter, err := v.Fields(cue.Optional(true))
	if err != nil {
		return err
	}
	for iter.Next() {
		sel := iter.Selector()
		if !sel.IsString() {
			continue
		}
		name := joinField(prefix, sel.Unquoted())
		fields[name] = true
		if iter.Value().IncompleteKind() == cue.StructKind {
			if err := collectFields(iter.Value(), name, fields); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateFile validates the raw YAML at path. Keys the Config struct would
// silently drop are reported as well.
func (v *Validator) ValidateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	doc := map[string]any{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ValidationErrors{{Field: "(root)", Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	errs := v.validateJSON(data)
	// CUE drops closedness errors once another error is present.
	for _, unknown := range v.unknownFields(doc, "") {
		if !errs.has(unknown.Field) {
			errs = append(errs, unknown)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) unknownFields(doc map[string]any, prefix string) ValidationErrors {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs ValidationErrors
	for _, k := range keys {
		name := joinField(prefix, k)
		if !v.fields[name] {
			errs = append(errs, ValidationError{Field: name, Message: "field not allowed"})
			continue
		}
		if sub, ok := doc[k].(map[string]any); ok {
			errs = append(errs, v.unknownFields(sub, name)...)
		}
	}
	return errs
}

func (v *Validator) validateJSON(data []byte) ValidationErrors {
	value := v.ctx.CompileBytes(data, cue.Filename("config.yaml"))
	if value.Err() != nil {
		return ValidationErrors{{Field: "(root)", Message: value.Err().Error()}}
	}

	unified := v.schema.Unify(value)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   fieldPath(e.Path()),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(errs) == 0 {
		return ValidationErrors{{Field: "(root)", Message: err.Error()}}
	}
	return errs
}

func (e ValidationErrors) has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// fieldPath joins a CUE error path, dropping the definition it was reported under.
func fieldPath(p []string) string {
	for len(p) > 0 && strings.HasPrefix(p[0], "#") {
		p = p[1:]
	}
	if len(p) == 0 {
		return "(root)"
	}
	return strings.Join(p, ".")
}

func joinField(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
