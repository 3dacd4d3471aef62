// Package manifest provides loading and updating of npm package.json files.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/enginecheck/enginecheck/engines"
)

// FileName is the npm manifest file name.
const FileName = "package.json"

// ErrManifestNotFound indicates the project has no package.json.
var ErrManifestNotFound = errors.New("package.json not found")

// Manifest represents a loaded project manifest.
type Manifest struct {
	// Path is the absolute or caller-supplied path of the manifest file.
	Path string

	// Dependencies maps dependency name to its declared version range,
	// merging the dependencies and devDependencies sections.
	Dependencies map[string]string

	// Engines holds the project's own declared engine constraints.
	Engines engines.Declared
}

// packageJSON mirrors the manifest fields this tool reads.
type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         map[string]string `json:"engines"`
}

// Load reads and parses the manifest at path.
//
// Returns ErrManifestNotFound (wrapped with the path) when the file does not
// exist; a parse failure is reported as an error naming the path. Both are
// fatal to an analysis run.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrManifestNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name, rng := range pkg.Dependencies {
		deps[name] = rng
	}
	for name, rng := range pkg.DevDependencies {
		deps[name] = rng
	}

	return &Manifest{
		Path:         path,
		Dependencies: deps,
		Engines:      declaredFromMap(pkg.Engines),
	}, nil
}

// LoadFromRoot loads the manifest of the project rooted at dir.
func LoadFromRoot(dir string) (*Manifest, error) {
	return Load(filepath.Join(dir, FileName))
}

func declaredFromMap(m map[string]string) engines.Declared {
	return engines.Declared{
		Runtime:        m[engines.KindRuntime.String()],
		PackageManager: m[engines.KindPackageManager.String()],
	}
}
