// Package catalog provides the reference version catalogs searched during
// range resolution.
//
// A catalog holds a finite, ascending list of known release versions for one
// engine kind. Resolution never synthesizes versions; every resolved bound is
// drawn from a catalog.
package catalog

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Catalog is an immutable, ascending list of valid semantic versions.
type Catalog struct {
	versions []*semver.Version
}

// New builds a catalog from a raw list of version tokens.
//
// Tokens that do not parse as semantic versions (release-channel aliases like
// "latest" or "lts/iron") are silently dropped. The remainder is deduplicated
// and sorted ascending by semver precedence, not lexically. An empty result
// is valid and propagates "undetermined" through resolution.
func New(raw []string) *Catalog {
	seen := make(map[string]bool, len(raw))
	versions := make([]*semver.Version, 0, len(raw))

	for _, token := range raw {
		v, err := semver.NewVersion(token)
		if err != nil {
			continue
		}
		if seen[v.String()] {
			continue
		}
		seen[v.String()] = true
		versions = append(versions, v)
	}

	sort.Sort(semver.Collection(versions))

	return &Catalog{versions: versions}
}

// Len returns the number of versions in the catalog.
func (c *Catalog) Len() int {
	return len(c.versions)
}

// Versions returns the catalog's versions in ascending order.
// The returned slice is a copy; the catalog itself never changes.
func (c *Catalog) Versions() []*semver.Version {
	out := make([]*semver.Version, len(c.versions))
	copy(out, c.versions)
	return out
}

// Strings returns the catalog's versions as their original strings,
// ascending.
func (c *Catalog) Strings() []string {
	out := make([]string, len(c.versions))
	for i, v := range c.versions {
		out[i] = v.Original()
	}
	return out
}
