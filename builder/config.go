// SPDX-License-Identifier: MIT
// Package: segpath/builder
//
// config.go: builder configuration and functional options.
//
// Deterministic defaults:
//   • rng      = nil     (pure/deterministic unless seeded)
//   • origin   = (0,0)
//   • shuffle  = false

package builder

import (
	"math/rand"

	"github.com/katalvlaran/segpath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng     *rand.Rand
	origin  core.Point
	shuffle bool
}

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithOrigin translates every emitted point by (x, y).
func WithOrigin(x, y int) Option {
	return func(c *builderConfig) { c.origin = core.Point{X: x, Y: y} }
}

// WithShuffle permutes the final edge order. Requires WithSeed.
func WithShuffle() Option {
	return func(c *builderConfig) { c.shuffle = true }
}

// newBuilderConfig applies opts in order; later options override earlier ones.
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// at translates lattice coordinates by the configured origin.
func (c builderConfig) at(x, y int) core.Point {
	return core.Point{X: c.origin.X + x, Y: c.origin.Y + y}
}
