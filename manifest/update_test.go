package manifest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestUpdateEnginesReplacesExistingSection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "package.json", `{
  "name": "fixture",
  "engines": {
    "node": ">=16.0.0"
  },
  "dependencies": {
    "express": "^4.18.0"
  }
}`)

	require.NoError(t, UpdateEngines(path, ">=18.0.0 <=20.0.0", ">=9.0.0"))

	assert.Equal(t, `{
  "name": "fixture",
  "engines": {
    "node": ">=18.0.0 <=20.0.0",
    "npm": ">=9.0.0"
  },
  "dependencies": {
    "express": "^4.18.0"
  }
}`, readBack(t, path))
}

func TestUpdateEnginesInsertsSection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "package.json", `{
  "name": "fixture",
  "dependencies": {
    "express": "^4.18.0"
  }
}`)

	require.NoError(t, UpdateEngines(path, ">=18.0.0", ""))

	assert.Equal(t, `{
  "name": "fixture",
  "dependencies": {
    "express": "^4.18.0"
  },
  "engines": {
    "node": ">=18.0.0"
  }
}`, readBack(t, path))
}

func TestUpdateEnginesPreservesTabs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "package.json", "{\n\t\"name\": \"fixture\",\n\t\"engines\": {\n\t\t\"node\": \">=16\"\n\t}\n}")

	require.NoError(t, UpdateEngines(path, ">=18.0.0", ""))

	assert.Equal(t, "{\n\t\"name\": \"fixture\",\n\t\"engines\": {\n\t\t\"node\": \">=18.0.0\"\n\t}\n}", readBack(t, path))
}

func TestUpdateEnginesPreservesUnrelatedKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "package.json", `{
  "name": "fixture",
  "engines": {
    "yarn": ">=1.22.0",
    "node": ">=16.0.0"
  }
}`)

	require.NoError(t, UpdateEngines(path, ">=18.0.0", ">=9.0.0"))

	// yarn survives in place; node keeps its slot; npm is appended.
	assert.Equal(t, `{
  "name": "fixture",
  "engines": {
    "yarn": ">=1.22.0",
    "node": ">=18.0.0",
    "npm": ">=9.0.0"
  }
}`, readBack(t, path))
}

func TestUpdateEnginesNoOp(t *testing.T) {
	dir := t.TempDir()
	original := `{
  "name": "fixture",
  "engines": {
    "node": ">=18.0.0 <=20.0.0"
  }
}`
	path := writeFile(t, dir, "package.json", original)

	err := UpdateEngines(path, ">=18.0.0 <=20.0.0", "")
	assert.ErrorIs(t, err, ErrAlreadyUpToDate)
	assert.Equal(t, original, readBack(t, path))
}

func TestUpdateEnginesEmptyArgumentsKeepExisting(t *testing.T) {
	dir := t.TempDir()
	original := `{
  "engines": {
    "node": ">=18.0.0"
  }
}`
	path := writeFile(t, dir, "package.json", original)

	err := UpdateEngines(path, "", "")
	assert.ErrorIs(t, err, ErrAlreadyUpToDate)
	assert.Equal(t, original, readBack(t, path))
}

func TestUpdateEnginesMissingManifest(t *testing.T) {
	err := UpdateEngines(t.TempDir()+"/package.json", ">=18.0.0", "")
	assert.ErrorIs(t, err, ErrManifestNotFound)
}

func TestUpdateEnginesUnparsableManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "package.json", `{"name": `)

	err := UpdateEngines(path, ">=18.0.0", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestDetectIndent(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"two spaces", "{\n  \"a\": 1\n}", "  "},
		{"four spaces", "{\n    \"a\": 1\n}", "    "},
		{"tab", "{\n\t\"a\": 1\n}", "\t"},
		{"single line", `{"a": 1}`, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectIndent([]byte(tt.data)); got != tt.want {
				t.Errorf("detectIndent() = %q, want %q", got, tt.want)
			}
		})
	}
}
