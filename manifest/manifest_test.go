package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMergesDependencySections(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "package.json", `{
  "name": "fixture",
  "dependencies": {
    "express": "^4.18.0",
    "lodash": "^4.17.0"
  },
  "devDependencies": {
    "typescript": "^5.2.0",
    "lodash": "^4.17.21"
  },
  "engines": {
    "node": ">=18",
    "npm": ">=9"
  }
}`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, m.Path)
	assert.Len(t, m.Dependencies, 3)
	assert.Equal(t, "^4.18.0", m.Dependencies["express"])
	// devDependencies win on overlap.
	assert.Equal(t, "^4.17.21", m.Dependencies["lodash"])
	assert.Equal(t, ">=18", m.Engines.Runtime)
	assert.Equal(t, ">=9", m.Engines.PackageManager)
}

func TestLoadNoDependencies(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "package.json", `{"name": "bare"}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, m.Dependencies)
	assert.True(t, m.Engines.IsEmpty())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "package.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrManifestNotFound)
	assert.Contains(t, err.Error(), "package.json")
}

func TestLoadParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "package.json", `{"name": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrManifestNotFound))
	assert.Contains(t, err.Error(), path)
}

func TestLoadFromRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"dependencies": {"chalk": "^5.0.0"}}`)

	m, err := LoadFromRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "package.json"), m.Path)
	assert.Len(t, m.Dependencies, 1)
}
