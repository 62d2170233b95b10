// SPDX-License-Identifier: MIT
// Package: segpath/builder
//
// impl_grid.go: Grid(cols, rows) and RandomLattice(cols, rows, keep).
//
// Canonical model:
//   • Points (x,y) with x∈[0..cols-1], y∈[0..rows-1], shifted by cfg.origin.
//   • For each (x,y) in row-major order emit Right (x+1,y) then Down (x,y+1) if present.
//
// Complexity:
//   • Time: O(cols·rows). Space: O(cols·rows) emitted edges.

package builder

import (
	"github.com/katalvlaran/segpath/core"
)

const (
	methodGrid          = "Grid"
	methodRandomLattice = "RandomLattice"
	minGridDim          = 1
	minProbability      = 0.0
	maxProbability      = 1.0
)

// Grid returns a Constructor that emits a cols×rows orthogonal lattice.
// A 1×1 grid is a single point and therefore emits no edges.
func Grid(cols, rows int) Constructor {
	return func(dst []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if cols < minGridDim || rows < minGridDim {
			return nil, builderErrorf(methodGrid, "cols=%d, rows=%d (each must be ≥ %d): %w",
				cols, rows, minGridDim, ErrTooFewVertices)
		}

		return lattice(dst, cfg, cols, rows, func() bool { return true }), nil
	}
}

// RandomLattice returns a Constructor that emits a cols×rows lattice where every
// edge is kept independently with probability keep. Requires WithSeed.
func RandomLattice(cols, rows int, keep float64) Constructor {
	return func(dst []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if cols < minGridDim || rows < minGridDim {
			return nil, builderErrorf(methodRandomLattice, "cols=%d, rows=%d (each must be ≥ %d): %w",
				cols, rows, minGridDim, ErrTooFewVertices)
		}
		if keep < minProbability || keep > maxProbability {
			return nil, builderErrorf(methodRandomLattice, "keep=%.3f: %w", keep, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, builderErrorf(methodRandomLattice, "%w", ErrNeedRandSource)
		}

		return lattice(dst, cfg, cols, rows, func() bool { return cfg.rng.Float64() < keep }), nil
	}
}

// lattice emits Right then Down edges for every cell, asking keep once per candidate edge.
func lattice(dst []core.Edge, cfg builderConfig, cols, rows int, keep func() bool) []core.Edge {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			u := cfg.at(x, y)
			if x+1 < cols && keep() {
				dst = append(dst, core.NewEdge(u, cfg.at(x+1, y)))
			}
			if y+1 < rows && keep() {
				dst = append(dst, core.NewEdge(u, cfg.at(x, y+1)))
			}
		}
	}

	return dst
}
