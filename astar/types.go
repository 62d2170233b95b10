package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/segpath/core"
)

// Sentinel errors for A* search.
var (
	// ErrNodeNotInGraph is returned when start or goal appears in no edge.
	ErrNodeNotInGraph = errors.New("astar: start or goal node is not part of the graph")

	// ErrNoPathFound is returned when the frontier is exhausted before reaching the goal.
	ErrNoPathFound = errors.New("astar: no path found between the nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when the search expands more vertices than allowed.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// RelaxPolicy selects how a relaxation decides whether an equal-or-better entry
// for the same point is already queued.
type RelaxPolicy int

const (
	// RelaxBestCost keeps a per-point table of the best g pushed so far.
	RelaxBestCost RelaxPolicy = iota
	// RelaxFrontierScan scans the live frontier on every relaxation.
	RelaxFrontierScan
)

const (
	policyBestCost     = "best-cost"
	policyFrontierScan = "frontier-scan"
)

// String returns the configuration name of the policy.
func (p RelaxPolicy) String() string {
	switch p {
	case RelaxBestCost:
		return policyBestCost
	case RelaxFrontierScan:
		return policyFrontierScan
	default:
		return fmt.Sprintf("RelaxPolicy(%d)", int(p))
	}
}

// ParseRelaxPolicy maps "best-cost" or "frontier-scan" to a RelaxPolicy.
// The empty string selects RelaxBestCost.
func ParseRelaxPolicy(s string) (RelaxPolicy, error) {
	switch s {
	case "", policyBestCost:
		return RelaxBestCost, nil
	case policyFrontierScan:
		return RelaxFrontierScan, nil
	default:
		return RelaxBestCost, fmt.Errorf("%w: unknown relax policy %q", ErrOptionViolation, s)
	}
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the tunables of a single search.
type Options struct {
	// Policy selects the relaxation membership check.
	Policy RelaxPolicy

	// MaxExpansions, if > 0, caps the number of expanded vertices.
	// 0 means unlimited.
	MaxExpansions int

	// OnExpand is called for every expanded point, the goal included, with its g-cost.
	// A non-nil error aborts the search.
	OnExpand func(p core.Point, g int) error

	err error
}

// DefaultOptions returns RelaxBestCost, no expansion limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Policy:        RelaxBestCost,
		MaxExpansions: 0,
		OnExpand:      func(core.Point, int) error { return nil },
	}
}

// WithRelaxPolicy selects the relaxation policy.
func WithRelaxPolicy(p RelaxPolicy) Option {
	return func(o *Options) {
		switch p {
		case RelaxBestCost, RelaxFrontierScan:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown relax policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithMaxExpansions caps the number of expanded vertices.
//
//	n > 0: at most n expansions, then ErrExpansionLimit
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback invoked for every expanded point.
func WithOnExpand(fn func(p core.Point, g int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Path runs from start to goal inclusive.
	Path []core.Point
	// Hops is len(Path)-1.
	Hops int
	// Expanded counts the vertices popped and finalized, the goal included.
	Expanded int
}
