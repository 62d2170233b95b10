// Package builder produces deterministic edge-list fixtures for segpath: lattices,
// polylines, combs and randomly thinned lattices. It keeps tests, benchmarks,
// examples and the `segpath gen` command working from the same shapes.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – Build(opts, cons...): resolves options once and runs constructors in order,
//     concatenating the edges they emit.
//   - Constructors (Constructor implementations):
//     – Grid(cols, rows):                 4-neighborhood lattice.
//     – Path(points...):                  polyline through consecutive points.
//     – Comb(teeth, length):              a spine along y=0 with vertical teeth.
//     – RandomLattice(cols, rows, keep):  lattice whose edges survive with probability keep.
//   - Options (Option implementations):
//     – WithSeed(seed):    seeds the RNG used by RandomLattice and WithShuffle.
//     – WithOrigin(x, y):  translates every emitted point.
//     – WithShuffle():     permutes the final edge order (needs a seed).
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical edge slices.
//   - Stable edge order: lattices emit, for each (x,y) in row-major order,
//     the Right edge then the Down edge.
//   - Runtime errors are sentinel-wrapped (errors.Is); constructors never panic.
//
// Errors:
//
//   - ErrTooFewVertices:     a size parameter is below its minimum.
//   - ErrInvalidProbability: keep ∉ [0,1].
//   - ErrNeedRandSource:     a stochastic constructor or WithShuffle ran without WithSeed.
//
// Complexity:
//
//   - Grid / RandomLattice: O(cols·rows).
//   - Path: O(len(points)). Comb: O(teeth·length).
package builder
