package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name      string
		content   string
		wantErr   bool
		wantField string
	}{
		{
			name:    "full config",
			content: "templates:\n  source: embedded\n  ref: main\nauthor:\n  name: Jane\n  email: jane@example.com\nlog:\n  timestamps: true\n",
		},
		{
			name:    "empty file",
			content: "",
		},
		{
			name:      "unknown top-level key",
			content:   "registry: ghcr.io/acme\n",
			wantErr:   true,
			wantField: "registry",
		},
		{
			name:      "bad email",
			content:   "author:\n  email: not-an-email\n",
			wantErr:   true,
			wantField: "author.email",
		},
		{
			name:      "unknown nested key",
			content:   "templates:\n  branch: main\n",
			wantErr:   true,
			wantField: "templates.branch",
		},
		{
			name:      "wrong type",
			content:   "log:\n  timestamps: sometimes\n",
			wantErr:   true,
			wantField: "log.timestamps",
		},
		{
			name:      "empty source",
			content:   "templates:\n  source: \"\"\n",
			wantErr:   true,
			wantField: "templates.source",
		},
		{
			name:      "malformed yaml",
			content:   "templates: [unclosed",
			wantErr:   true,
			wantField: "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			err := v.ValidateFile(path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.wantField)
			assert.NotContains(t, err.Error(), "#Config")
		})
	}
}

func TestValidator_ValidateFileReportsEveryProblem(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "registry: x\nauthor:\n  email: nope\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	err = v.ValidateFile(path)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Message
	}
	assert.Contains(t, fields, "author.email")
	assert.Equal(t, "field not allowed", fields["registry"])
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{[]string{"#Config", "author", "email"}, "author.email"},
		{[]string{"log", "timestamps"}, "log.timestamps"},
		{[]string{"#Config"}, "(root)"},
		{nil, "(root)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldPath(tt.path))
		})
	}
}

func TestValidator_ValidateFileMissing(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "author.email", Message: "invalid value"},
	}
	assert.Contains(t, errs.Error(), "config validation failed")
	assert.Contains(t, errs.Error(), "author.email: invalid value")
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}
