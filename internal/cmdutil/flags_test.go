package cmdutil

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFlags_AddTo(t *testing.T) {
	var pf ProjectFlags
	cmd := &cobra.Command{Use: "test"}
	pf.AddTo(cmd)

	optionsFlag := cmd.Flags().Lookup("options")
	require.NotNil(t, optionsFlag)
	assert.Equal(t, "o", optionsFlag.Shorthand)
	assert.Equal(t, "", optionsFlag.DefValue)

	dirFlag := cmd.Flags().Lookup("dir")
	require.NotNil(t, dirFlag)
	assert.Equal(t, "d", dirFlag.Shorthand)
}

func TestProjectFlags_BaseDir(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		pf := ProjectFlags{Dir: "/tmp/projects"}
		dir, err := pf.BaseDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/projects", dir)
	})

	t.Run("defaults to working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		var pf ProjectFlags
		dir, err := pf.BaseDir()
		require.NoError(t, err)
		assert.Equal(t, wd, dir)
	})
}

func TestTargetDirFlags_AddTo(t *testing.T) {
	var tf TargetDirFlags
	cmd := &cobra.Command{Use: "test"}
	tf.AddTo(cmd)

	dirFlag := cmd.Flags().Lookup("dir")
	require.NotNil(t, dirFlag)
	assert.Equal(t, ".", dirFlag.DefValue)
}
