package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "simple", input: "utils"},
		{name: "hyphen", input: "my-api"},
		{name: "underscore and digits", input: "board_v2"},
		{name: "empty", input: "", wantErr: "cannot be empty"},
		{name: "leading digit", input: "1api", wantErr: "must start with a letter"},
		{name: "leading hyphen", input: "-api", wantErr: "must start with a letter"},
		{name: "path separator", input: "a/b", wantErr: "invalid character"},
		{name: "dot", input: "my.api", wantErr: "invalid character"},
		{name: "space", input: "my api", wantErr: "invalid character"},
		{name: "non ascii", input: "prøject", wantErr: "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "my_api", SnakeCase("my-api"))
	assert.Equal(t, "board_v2", SnakeCase("board_v2"))
}

func TestPascalCase(t *testing.T) {
	tests := map[string]string{
		"my-api":      "MyApi",
		"board":       "Board",
		"my_cool-app": "MyCoolApp",
		"a--b":        "AB",
		"API":         "API",
	}
	for in, want := range tests {
		assert.Equal(t, want, PascalCase(in), in)
	}
}

func TestParseProjectType(t *testing.T) {
	for _, typ := range ProjectTypes() {
		got, err := ParseProjectType(string(typ))
		assert.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := ParseProjectType(" Service ")
	assert.NoError(t, err)
	assert.Equal(t, TypeService, got)

	_, err = ParseProjectType("daemon")
	assert.Error(t, err)
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "none", PersistenceNone.String())
	assert.Equal(t, "postgres", PersistencePostgres.String())
	assert.Equal(t, "none", FrontendNone.String())
	assert.Equal(t, "ssr", FrontendSSR.String())
	assert.Equal(t, "persistence", ModulePersistence.Name())
}
