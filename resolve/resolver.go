package resolve

import (
	"github.com/Masterminds/semver/v3"
	"github.com/enginecheck/enginecheck/catalog"
	"github.com/enginecheck/enginecheck/observability"
)

// Resolver computes the compatible sub-range of a reference catalog under a
// set of constraints.
//
// Rather than intersecting arbitrary npm range expressions directly, it
// satisfaction-tests every catalog version against every constraint. The
// catalog is small and finite, which sidesteps general range-intersection
// arithmetic at the cost of only catalog-granularity precision.
type Resolver struct {
	log observability.Logger
}

// NewResolver creates a resolver.
func NewResolver(log observability.Logger) *Resolver {
	if log == nil {
		log = observability.NewNullLogger()
	}
	return &Resolver{log: log}
}

// Resolve returns the (min, max) catalog versions satisfying every
// constraint in the list.
//
// An empty constraint list yields an empty Range: no claim is made. A
// constraint that fails to parse is treated as satisfied by no version
// (logged once per distinct malformed expression, never a hard error), so
// its presence also yields an empty Range. Prerelease catalog entries are
// excluded from matching. An empty Range is likewise the result when no
// catalog version satisfies all constraints simultaneously; callers that
// need to tell "no constraints" from "no overlap" must do so from their own
// knowledge of the constraint list.
func (r *Resolver) Resolve(cat *catalog.Catalog, constraints []string) Range {
	if len(constraints) == 0 {
		return Range{}
	}

	parsed := make([]*semver.Constraints, 0, len(constraints))
	seenMalformed := map[string]bool{}
	malformed := false
	for _, raw := range constraints {
		c, err := semver.NewConstraint(raw)
		if err != nil {
			malformed = true
			if !seenMalformed[raw] {
				seenMalformed[raw] = true
				r.log.Warn("Ignoring malformed range expression {Constraint}: {Error}", raw, err)
			}
			continue
		}
		parsed = append(parsed, c)
	}

	// A malformed constraint satisfies no version, so the intersection is
	// already known to be empty.
	if malformed {
		return Range{}
	}

	var matching []*semver.Version
	for _, v := range cat.Versions() {
		if v.Prerelease() != "" {
			continue
		}
		if satisfiesAll(v, parsed) {
			matching = append(matching, v)
		}
	}

	if len(matching) == 0 {
		return Range{}
	}

	// Catalog order is ascending, so first and last are the bounds.
	return Range{Min: matching[0], Max: matching[len(matching)-1]}
}

func satisfiesAll(v *semver.Version, constraints []*semver.Constraints) bool {
	for _, c := range constraints {
		if !c.Check(v) {
			return false
		}
	}
	return true
}
