// Package engines defines the two compatibility dimensions tracked by the
// analyzer: the Node.js runtime and the npm package manager.
package engines

// Kind identifies one of the two engine dimensions. Constraints, catalogs,
// and resolved ranges are always tagged with exactly one Kind; the two kinds
// are processed identically but never mixed.
type Kind int

const (
	// KindRuntime is the Node.js runtime engine ("node" in package.json).
	KindRuntime Kind = iota

	// KindPackageManager is the npm package manager ("npm" in package.json).
	KindPackageManager
)

// String returns the package.json engines key for the kind.
func (k Kind) String() string {
	switch k {
	case KindRuntime:
		return "node"
	case KindPackageManager:
		return "npm"
	default:
		return "unknown"
	}
}

// Declared holds the engine constraints a single package declares in its
// own manifest. An empty string means the package declares no constraint
// for that kind.
type Declared struct {
	// Runtime is the declared "node" range expression, verbatim.
	Runtime string

	// PackageManager is the declared "npm" range expression, verbatim.
	PackageManager string
}

// IsEmpty reports whether the package declares no engine constraints at all.
func (d Declared) IsEmpty() bool {
	return d.Runtime == "" && d.PackageManager == ""
}
