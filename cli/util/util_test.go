package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgError(t *testing.T) {
	err := NewArgError("bad argument")
	assert.Equal(t, "bad argument", err.Error())

	var argError *ArgError
	assert.True(t, errors.As(err, &argError))
}

func TestHomeDotfilePath(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	path, err := HomeDotfilePath(".templer")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".templer"), path)
}

func TestParseYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("summary: a skeleton\nndots: 1\n"), 0o644))

	parsed, err := ParseYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "a skeleton", parsed["summary"])
	assert.Equal(t, 1, parsed["ndots"])

	_, err = ParseYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
