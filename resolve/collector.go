package resolve

import (
	"context"
	"errors"

	"github.com/enginecheck/enginecheck/manifest"
	"github.com/enginecheck/enginecheck/observability"
)

// Collector gathers engine constraints from a dependency set.
//
// The scan is partial-failure tolerant: a dependency whose metadata is
// missing or unreadable contributes the permissive default for the runtime
// kind and a diagnostic, never an abort.
type Collector struct {
	source MetadataSource
	log    observability.Logger
}

// NewCollector creates a collector reading metadata from source.
func NewCollector(source MetadataSource, log observability.Logger) *Collector {
	if log == nil {
		log = observability.NewNullLogger()
	}
	return &Collector{source: source, log: log}
}

// Collect loads each named dependency's declared engine constraints and
// returns the flat per-kind constraint lists.
//
// Declared constraint strings are appended verbatim; validation is deferred
// to the resolver. The onDep hook, if non-nil, is invoked after every
// dependency regardless of outcome, with its position in the scan.
func (c *Collector) Collect(ctx context.Context, deps []string, onDep func(name string, index, total int)) Collected {
	var out Collected
	total := len(deps)

	for i, name := range deps {
		declared, err := c.source.Lookup(ctx, name)
		switch {
		case err != nil:
			// Missing and unreadable metadata get the same treatment.
			// Only the runtime kind receives a default; the package-manager
			// kind gets nothing.
			// TODO: decide whether npm should receive the same fallback.
			reason := "unreadable"
			if errors.Is(err, manifest.ErrMetadataNotFound) {
				reason = "not found"
			}
			c.log.Warn("Dependency {Dependency} metadata {Reason}, assuming any runtime: {Error}", name, reason, err)
			out.Runtime = append(out.Runtime, PermissiveConstraint)

		case declared.IsEmpty():
			c.log.Debug("Dependency {Dependency} declares no engines, assuming any runtime", name)
			out.Runtime = append(out.Runtime, PermissiveConstraint)

		default:
			if declared.Runtime != "" {
				out.Runtime = append(out.Runtime, declared.Runtime)
			}
			if declared.PackageManager != "" {
				out.PackageManager = append(out.PackageManager, declared.PackageManager)
			}
		}

		if onDep != nil {
			onDep(name, i, total)
		}
	}

	return out
}
