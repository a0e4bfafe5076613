package identity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeConfig(name, email string) func() (*config.Config, error) {
	return func() (*config.Config, error) {
		cfg := config.NewConfig()
		cfg.User.Name = name
		cfg.User.Email = email
		return cfg, nil
	}
}

func fakeGit(values map[string]string) func(context.Context, string) (string, error) {
	return func(_ context.Context, key string) (string, error) {
		v, ok := values[key]
		if !ok {
			return "", errors.New("exit status 1")
		}
		return v, nil
	}
}

func TestGitResolver_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		config func() (*config.Config, error)
		git    map[string]string
		want   Author
	}{
		{
			name:   "config provides both",
			config: fakeConfig("Jane Doe", "jane@example.com"),
			want:   Author{Name: "Jane Doe", Email: "jane@example.com"},
		},
		{
			name:   "subprocess fills missing email",
			config: fakeConfig("Jane Doe", ""),
			git:    map[string]string{"user.email": "jane@example.com"},
			want:   Author{Name: "Jane Doe", Email: "jane@example.com"},
		},
		{
			name:   "config error falls back to subprocess",
			config: func() (*config.Config, error) { return nil, errors.New("permission denied") },
			git:    map[string]string{"user.name": "Jane Doe"},
			want:   Author{Name: "Jane Doe"},
		},
		{
			name:   "nothing available is empty",
			config: fakeConfig("", ""),
			want:   Author{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &GitResolver{Timeout: time.Second, loadConfig: tt.config, runGit: fakeGit(tt.git)}
			assert.Equal(t, tt.want, r.Resolve(context.Background()))
		})
	}
}

func TestGitResolver_SubprocessTimeoutFailsOpen(t *testing.T) {
	r := &GitResolver{
		Timeout:    10 * time.Millisecond,
		loadConfig: fakeConfig("", ""),
		runGit: func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}

	start := time.Now()
	got := r.Resolve(context.Background())
	assert.True(t, got.IsZero())
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestGitResolver_ReadsGlobalGitConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"),
		[]byte("[user]\n\tname = Jane Doe\n\temail = jane@example.com\n"), 0o644))

	r := NewGitResolver()
	r.runGit = fakeGit(nil)

	assert.Equal(t, Author{Name: "Jane Doe", Email: "jane@example.com"}, r.Resolve(context.Background()))
}

type countingResolver struct {
	calls  int
	author Author
}

func (c *countingResolver) Resolve(context.Context) Author {
	c.calls++
	return c.author
}

func TestOverride_Resolve(t *testing.T) {
	base := &countingResolver{author: Author{Name: "git-user", Email: "git@example.com"}}

	got := Override{Base: base, Email: "work@example.com"}.Resolve(context.Background())
	assert.Equal(t, Author{Name: "git-user", Email: "work@example.com"}, got)
	assert.Equal(t, 1, base.calls)

	got = Override{Base: base, Name: "Jane", Email: "jane@example.com"}.Resolve(context.Background())
	assert.Equal(t, Author{Name: "Jane", Email: "jane@example.com"}, got)
	assert.Equal(t, 1, base.calls, "base must not be consulted when both fields are set")

	got = Override{Name: "Solo"}.Resolve(context.Background())
	assert.Equal(t, Author{Name: "Solo"}, got)
}

func TestStatic_Resolve(t *testing.T) {
	s := Static{Name: "Jane"}
	assert.Equal(t, Author{Name: "Jane"}, s.Resolve(context.Background()))
	assert.False(t, s.Resolve(context.Background()).IsZero())
}
