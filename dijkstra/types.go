// Package dijkstra defines the options, errors and result types of the
// weighted shortest-path search over a finalized core.Graph.
//
// Options:
//
//	– WithTarget:      stop as soon as the target is settled (popped from the heap).
//	– WithMaxDistance: do not relax edges beyond the given cumulative distance.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– core.ErrUnknownNode if the source or target is absent (wrapped).
//	– core.ErrPrematureWeight if the graph has not been finalized.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrNoPath          if a target is known but unreachable from the source.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/collabgraph/core"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that no path joins the source and the target.
	// A disconnected graph is an expected outcome, not a fault.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures a single shortest-path run.
//
// Target       – when HasTarget is set, the search stops once Target is popped.
// MaxDistance  – relaxations producing a distance above this cap are skipped.
//
//	Default is +Inf (no cap).
type Options struct {
	Target      core.AuthorID
	HasTarget   bool
	MaxDistance float64
	err         error
}

// Option represents a functional option for ShortestPath.
type Option func(*Options)

// DefaultOptions returns Options with no target and no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithTarget enables early exit: the search terminates the moment target is
// popped from the frontier, returning the partial maps computed so far.
// Callers that need the full distance map must not set a target.
func WithTarget(target core.AuthorID) Option {
	return func(o *Options) {
		o.Target = target
		o.HasTarget = true
	}
}

// WithMaxDistance caps exploration: nodes whose distance would exceed max stay unreached.
// A negative or NaN value is recorded and surfaced as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds the outcome of one search.
//
//   - Dist[v] is the shortest known distance from Source to v, or +Inf if v was
//     not reached. Every node of the graph has an entry.
//   - Prev[v] is the predecessor of v on one shortest path. There is no entry
//     for Source or for unreached nodes.
//   - Complete is false when the search stopped early at a target; distances
//     of nodes not yet settled at that point are tentative.
type Result struct {
	Source   core.AuthorID
	Dist     map[core.AuthorID]float64
	Prev     map[core.AuthorID]core.AuthorID
	Complete bool

	g *core.Graph
}

// Step is one node of a reconstructed path and its cumulative distance from the source.
type Step struct {
	ID       core.AuthorID
	Name     string
	Distance float64
}

// Distance returns the distance to id and whether id was reached.
func (r *Result) Distance(id core.AuthorID) (float64, bool) {
	d, ok := r.Dist[id]
	if !ok || math.IsInf(d, 1) {
		return math.Inf(1), false
	}

	return d, true
}
