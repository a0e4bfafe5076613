package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1eedaegon/boots/internal/config"
	oerrors "github.com/1eedaegon/boots/internal/errors"
)

func execute(t *testing.T, cfg *config.GlobalConfig, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewConfigCmd(cfg)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Code
}

func TestNewConfigCmd(t *testing.T) {
	cmd := NewConfigCmd(&config.GlobalConfig{})

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"init", "vet"}, names)
}

func TestConfigInit_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &config.GlobalConfig{ConfigPath: path}

	out, _, err := execute(t, cfg, "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# boots CLI configuration")
	assert.Contains(t, string(data), "source: embedded")
	assert.Contains(t, string(data), "timestamps: true")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigInit_UsesDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfig, "")

	_, _, err := execute(t, &config.GlobalConfig{}, "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, ".boots", "config.yaml"))
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  timestamps: false\n"), 0o644))
	cfg := &config.GlobalConfig{ConfigPath: path}

	_, _, err := execute(t, cfg, "init")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitAlreadyExists, exitCode(t, err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log:\n  timestamps: false\n", string(data))

	_, _, err = execute(t, cfg, "init", "--force")
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timestamps: true")
}

func TestConfigVet(t *testing.T) {
	tests := []struct {
		name     string
		content  *string
		wantCode int
		wantErr  string
	}{
		{
			name:    "valid",
			content: strPtr("templates:\n  source: embedded\nauthor:\n  email: jane@example.com\n"),
		},
		{
			name:     "missing file",
			wantCode: oerrors.ExitNotFound,
		},
		{
			name:     "unknown key",
			content:  strPtr("registry: ghcr.io/acme\n"),
			wantCode: oerrors.ExitValidationError,
			wantErr:  "registry",
		},
		{
			name:     "bad email",
			content:  strPtr("author:\n  email: nobody\n"),
			wantCode: oerrors.ExitValidationError,
			wantErr:  "author.email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			out, errOut, err := execute(t, &config.GlobalConfig{ConfigPath: path}, "vet")
			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Contains(t, out, "Config file is valid")
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, exitCode(t, err))
			if tt.wantErr != "" {
				assert.Contains(t, errOut, tt.wantErr)
				assert.NotContains(t, errOut, "#Config")
			}
		})
	}
}

func TestConfigInitThenVet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &config.GlobalConfig{ConfigPath: path}

	_, _, err := execute(t, cfg, "init")
	require.NoError(t, err)

	_, _, err = execute(t, cfg, "vet")
	assert.NoError(t, err)
}

func strPtr(s string) *string {
	return &s
}
