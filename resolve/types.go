// Package resolve implements engine-range resolution: collecting the engine
// constraints declared by a project's dependencies and intersecting them
// against a reference version catalog.
package resolve

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/enginecheck/enginecheck/engines"
)

// PermissiveConstraint matches every version. It is substituted for the
// runtime kind when a dependency's metadata is missing, unreadable, or
// declares no engines at all.
const PermissiveConstraint = "*"

// MetadataSource loads the engine constraints a dependency declares for
// itself. Implementations report missing or unreadable metadata as an
// error; the collector treats every error as recoverable.
type MetadataSource interface {
	Lookup(ctx context.Context, name string) (engines.Declared, error)
}

// Range is a resolved (minimum, maximum) pair for one engine kind, drawn
// from the catalog used during resolution. Either both bounds are set and
// Min <= Max, or both are nil: "undetermined", covering both the
// no-constraints and the unsatisfiable cases.
type Range struct {
	Min *semver.Version
	Max *semver.Version
}

// IsEmpty reports whether the range is undetermined.
func (r Range) IsEmpty() bool {
	return r.Min == nil && r.Max == nil
}

// MinString returns the minimum bound's original string, or "" when unset.
func (r Range) MinString() string {
	if r.Min == nil {
		return ""
	}
	return r.Min.Original()
}

// MaxString returns the maximum bound's original string, or "" when unset.
func (r Range) MaxString() string {
	if r.Max == nil {
		return ""
	}
	return r.Max.Original()
}

// Collected holds the flat constraint lists gathered from a dependency set,
// one list per engine kind. Dependency attribution is not retained; only
// the range-string values matter to resolution.
type Collected struct {
	Runtime        []string
	PackageManager []string
}

// ForKind returns the constraint list collected for the given kind.
func (c Collected) ForKind(kind engines.Kind) []string {
	if kind == engines.KindPackageManager {
		return c.PackageManager
	}
	return c.Runtime
}
