package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/1eedaegon/boots/internal/errors"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"base/Cargo.workspace.toml": {Data: []byte("[workspace]\n")},
		"base/Makefile":             {Data: []byte("build:\n")},
		"github/build.yml":          {Data: []byte("name: build\n")},
		"bad/latin1.txt":            {Data: []byte{0xff, 0xfe, 0x41}},
		".git/HEAD":                 {Data: []byte("ref: refs/heads/main\n")},
	}
}

func TestFSStore_Get(t *testing.T) {
	s := NewFSStore("test", testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantOK  bool
		wantErr bool
	}{
		{name: "present", path: "base/Makefile", want: "build:\n", wantOK: true},
		{name: "absent", path: "base/nope", wantOK: false},
		{name: "directory is absent", path: "base", wantOK: false},
		{name: "invalid path is absent", path: "../etc/passwd", wantOK: false},
		{name: "non utf8 is an error", path: "bad/latin1.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := s.Get(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, oerrors.ErrTemplate)
				assert.Contains(t, err.Error(), tt.path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFSStore_List(t *testing.T) {
	s := NewFSStore("test", testFS())

	all, err := s.List("")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"bad/latin1.txt",
		"base/Cargo.workspace.toml",
		"base/Makefile",
		"github/build.yml",
	}, all)

	base, err := s.List("base/")
	require.NoError(t, err)
	assert.Equal(t, []string{"base/Cargo.workspace.toml", "base/Makefile"}, base)

	none, err := s.List("frontend/")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTemplateError(t *testing.T) {
	err := &TemplateError{Path: "base/Cargo.workspace.toml", Reason: "not found"}
	assert.Equal(t, "template base/Cargo.workspace.toml: not found", err.Error())
	assert.ErrorIs(t, err, oerrors.ErrTemplate)
}
