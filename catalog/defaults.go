package catalog

import (
	"sync"

	"github.com/enginecheck/enginecheck/engines"
)

// nodeReleases lists known Node.js releases, one entry per minor line plus
// the .0 patch of each major. The list intentionally carries a few
// release-channel aliases and prerelease builds; construction filters the
// aliases and resolution skips the prereleases.
var nodeReleases = []string{
	"10.0.0", "10.24.1",
	"12.0.0", "12.22.12",
	"14.0.0", "14.17.0", "14.21.3",
	"16.0.0", "16.13.0", "16.20.2",
	"18.0.0", "18.12.0", "18.17.0", "18.20.4",
	"19.0.0", "19.9.0",
	"20.0.0", "20.9.0", "20.11.0", "20.17.0",
	"21.0.0", "21.7.3",
	"22.0.0", "22.5.0", "22.11.0",
	"23.0.0-rc.1",
	"lts/hydrogen", "lts/iron", "lts/jod", "latest",
}

// npmReleases lists known npm releases the same way.
var npmReleases = []string{
	"6.0.0", "6.14.18",
	"7.0.0", "7.24.2",
	"8.0.0", "8.19.4",
	"9.0.0", "9.6.7", "9.9.3",
	"10.0.0", "10.2.4", "10.8.2", "10.9.0",
	"11.0.0-pre.0",
	"latest",
}

var (
	defaultsOnce sync.Once
	defaultNode  *Catalog
	defaultNpm   *Catalog
)

// Default returns the embedded reference catalog for the given engine kind.
// Catalogs are built once per process and shared; they are immutable.
func Default(kind engines.Kind) *Catalog {
	defaultsOnce.Do(func() {
		defaultNode = New(nodeReleases)
		defaultNpm = New(npmReleases)
	})

	if kind == engines.KindPackageManager {
		return defaultNpm
	}
	return defaultNode
}
