// SPDX-License-Identifier: MIT
// Package: segpath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with builderErrorf and %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (cols, rows, teeth, points)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic step requires WithSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes the formatted message with the constructor name.
// The sentinel must be passed through %w in format.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
