package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
name: blink
sources:
  - main.tmm
  - lib/leds.tmm
  - /abs/vectors.tmm
format: json
verbose: true
`)
	prof, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "blink", prof.Name)
	assert.Equal(t, "json", prof.Format)
	assert.True(t, prof.Verbose)

	dir := filepath.Dir(path)
	assert.Equal(t, []string{
		filepath.Join(dir, "main.tmm"),
		filepath.Join(dir, "lib", "leds.tmm"),
		"/abs/vectors.tmm",
	}, prof.SourcePaths())
}

func TestLoadProfileDefaults(t *testing.T) {
	prof, err := LoadProfile(writeProfile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "text", prof.Format)
	assert.False(t, prof.Verbose)
	assert.Empty(t, prof.SourcePaths())
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open profile")

	_, err = LoadProfile(writeProfile(t, "format: xml\n"))
	assert.ErrorContains(t, err, "invalid format")

	_, err = LoadProfile(writeProfile(t, "name: x\nsurprise: 1\n"))
	assert.ErrorContains(t, err, "failed to parse profile")

	_, err = LoadProfile(writeProfile(t, "sources: main.tmm\n"))
	assert.ErrorContains(t, err, "failed to parse profile")
}
