// SPDX-License-Identifier: MIT
// Package: segpath/builder
//
// impl_path.go: Path(points...) and Comb(teeth, length).
//
// Path emits one edge per consecutive pair, in input order, shifted by cfg.origin.
// Points do not have to be axis-aligned neighbors: a segment is a single hop.
//
// Comb emits a spine (0,0)…(2·(teeth-1),0) and, at every even x, a tooth going
// down to (x,length). Teeth are dead ends, which makes the comb a worst case for
// a Manhattan heuristic aimed at the far end of the spine.

package builder

import (
	"github.com/katalvlaran/segpath/core"
)

const (
	methodPath    = "Path"
	methodComb    = "Comb"
	minPathPoints = 2
	minCombTeeth  = 1
	minCombLength = 1
)

// Path returns a Constructor that emits the polyline through points.
func Path(points ...core.Point) Constructor {
	return func(dst []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if len(points) < minPathPoints {
			return nil, builderErrorf(methodPath, "points=%d (must be ≥ %d): %w",
				len(points), minPathPoints, ErrTooFewVertices)
		}
		for i := 1; i < len(points); i++ {
			a, b := points[i-1], points[i]
			dst = append(dst, core.NewEdge(cfg.at(a.X, a.Y), cfg.at(b.X, b.Y)))
		}

		return dst, nil
	}
}

// Comb returns a Constructor that emits a comb with the given number of teeth.
func Comb(teeth, length int) Constructor {
	return func(dst []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if teeth < minCombTeeth || length < minCombLength {
			return nil, builderErrorf(methodComb, "teeth=%d, length=%d: %w", teeth, length, ErrTooFewVertices)
		}
		spineEnd := 2 * (teeth - 1)
		for x := 0; x <= spineEnd; x++ {
			if x < spineEnd {
				dst = append(dst, core.NewEdge(cfg.at(x, 0), cfg.at(x+1, 0)))
			}
			if x%2 != 0 {
				continue
			}
			for y := 0; y < length; y++ {
				dst = append(dst, core.NewEdge(cfg.at(x, y), cfg.at(x, y+1)))
			}
		}

		return dst, nil
	}
}
