// Package analyze orchestrates a single engine-range analysis run over a
// project: manifest load, constraint collection, and range resolution for
// both engine kinds.
package analyze

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/enginecheck/enginecheck/catalog"
	"github.com/enginecheck/enginecheck/engines"
	"github.com/enginecheck/enginecheck/manifest"
	"github.com/enginecheck/enginecheck/observability"
	"github.com/enginecheck/enginecheck/resolve"
)

// NoteNoDependencies marks a result produced for a project with no
// dependencies: collection and resolution were skipped as vacuous.
const NoteNoDependencies = "no dependencies found"

// Result is the outcome of one analysis run. It is immutable after
// construction and not persisted; callers consume it and discard it.
type Result struct {
	// ManifestPath is the path of the analyzed manifest.
	ManifestPath string

	// Runtime is the resolved compatible range for the Node.js runtime.
	Runtime resolve.Range

	// PackageManager is the resolved compatible range for npm.
	PackageManager resolve.Range

	// Note carries NoteNoDependencies when the dependency set was empty,
	// and is empty otherwise.
	Note string
}

// ForKind returns the resolved range for the given engine kind.
func (r *Result) ForKind(kind engines.Kind) resolve.Range {
	if kind == engines.KindPackageManager {
		return r.PackageManager
	}
	return r.Runtime
}

// Analyzer runs engine-range analyses against fixed reference catalogs.
// Catalogs are injected at construction; the analyzer holds no mutable
// state and a single instance can serve any number of sequential runs.
type Analyzer struct {
	runtimeCatalog *catalog.Catalog
	pmCatalog      *catalog.Catalog
	log            observability.Logger
}

// New creates an analyzer resolving against the given catalogs.
func New(runtimeCat, pmCat *catalog.Catalog, log observability.Logger) *Analyzer {
	if log == nil {
		log = observability.NewNullLogger()
	}
	return &Analyzer{
		runtimeCatalog: runtimeCat,
		pmCatalog:      pmCat,
		log:            log,
	}
}

// NewDefault creates an analyzer using the embedded reference catalogs.
func NewDefault(log observability.Logger) *Analyzer {
	return New(catalog.Default(engines.KindRuntime), catalog.Default(engines.KindPackageManager), log)
}

// Run analyzes the project rooted at projectRoot.
//
// A missing or unparsable manifest is fatal: Run returns an error naming the
// path and no result. Everything past that point completes: per-dependency
// metadata failures are absorbed by the collector and unsatisfiable or
// absent constraints surface as empty ranges, not errors. Progress goes to
// sink (nil for none): an initial tick, per-dependency ticks totalling 80%,
// then fixed ticks at 90% and 100%.
func (a *Analyzer) Run(ctx context.Context, projectRoot string, sink ProgressSink) (*Result, error) {
	if sink == nil {
		sink = nullSink{}
	}

	log := a.log.ForContext("RunID", uuid.NewString())

	m, err := manifest.LoadFromRoot(projectRoot)
	if err != nil {
		log.Error("Analysis aborted: {Error}", err)
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	log.Debug("Loaded manifest {Path} with {Count} dependencies", m.Path, len(m.Dependencies))

	sink.Report(0, "Analyzing dependencies")

	if len(m.Dependencies) == 0 {
		sink.Report(100, "Done")
		return &Result{ManifestPath: m.Path, Note: NoteNoDependencies}, nil
	}

	// Sorted iteration keeps the progress sequence and diagnostics
	// deterministic.
	deps := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		deps = append(deps, name)
	}
	sort.Strings(deps)

	source := manifest.NewNodeModulesSource(projectRoot)
	collector := resolve.NewCollector(source, log)
	collected := collector.Collect(ctx, deps, func(name string, index, total int) {
		sink.Report(80.0/float64(total), fmt.Sprintf("Checked %s", name))
	})

	sink.Report(10, "Resolving compatible range")

	resolver := resolve.NewResolver(log)
	result := &Result{
		ManifestPath:   m.Path,
		Runtime:        resolver.Resolve(a.runtimeCatalog, collected.Runtime),
		PackageManager: resolver.Resolve(a.pmCatalog, collected.PackageManager),
	}

	log.Debug("Resolved runtime range {Runtime}, package manager range {PackageManager}",
		result.Runtime.Format(), result.PackageManager.Format())

	sink.Report(10, "Done")
	return result, nil
}
