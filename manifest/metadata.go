package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/enginecheck/enginecheck/engines"
)

// ErrMetadataNotFound indicates a dependency has no manifest under
// node_modules (not installed, or a phantom entry).
var ErrMetadataNotFound = errors.New("dependency metadata not found")

// NodeModulesSource locates installed dependency metadata under a project's
// node_modules directory. It implements the metadata source consumed by the
// constraint collector.
type NodeModulesSource struct {
	root string
}

// NewNodeModulesSource creates a metadata source for the project rooted at dir.
func NewNodeModulesSource(dir string) *NodeModulesSource {
	return &NodeModulesSource{root: dir}
}

// Lookup reads the engine constraints declared by the named dependency's own
// package.json.
//
// Returns ErrMetadataNotFound when the dependency is not installed, or a
// parse error when its manifest is unreadable. Both are recoverable at the
// collection layer; Lookup itself never substitutes defaults.
func (s *NodeModulesSource) Lookup(ctx context.Context, name string) (engines.Declared, error) {
	if err := ctx.Err(); err != nil {
		return engines.Declared{}, err
	}

	path := filepath.Join(s.root, "node_modules", name, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return engines.Declared{}, fmt.Errorf("%s: %w", name, ErrMetadataNotFound)
		}
		return engines.Declared{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg struct {
		Engines map[string]string `json:"engines"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return engines.Declared{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return declaredFromMap(pkg.Engines), nil
}
