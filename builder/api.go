// SPDX-License-Identifier: MIT
// Package: segpath/builder
//
// api.go: public entry point of the builder package.
//
// Design contract:
//   • One orchestrator: Build(opts, cons...). Resolves cfg once, runs cons in order.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical edges.
//   • Safety: never panic; return sentinel-wrapped errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/segpath/core"
)

const methodBuild = "Build"

// Constructor appends the edges of one shape to dst using the resolved config.
type Constructor func(dst []core.Edge, cfg builderConfig) ([]core.Edge, error)

// Build resolves opts and applies every constructor in order, returning the
// concatenated edge list. Any constructor error is wrapped as "Build: %w" and
// returned immediately.
func Build(opts []Option, cons ...Constructor) ([]core.Edge, error) {
	cfg := newBuilderConfig(opts...)

	var (
		edges []core.Edge
		err   error
	)
	for _, c := range cons {
		if edges, err = c(edges, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, builderErrorf(methodBuild, "WithShuffle: %w", ErrNeedRandSource)
		}
		cfg.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	}

	return edges, nil
}
