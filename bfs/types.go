// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, sentinel errors and the Result of a neighborhood search.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/collabgraph/core"
)

// Sentinel errors for neighborhood extraction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid argument or Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Neighborhood via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks of a neighborhood search.
type Options struct {
	// Ctx allows cancellation between shells.
	Ctx context.Context

	// OnShell is called once per completed shell with its depth and its
	// sorted members. Returning an error aborts the search.
	OnShell func(depth int, shell []core.AuthorID) error

	err error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnShell: func(int, []core.AuthorID) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnShell registers a callback run after each shell is discovered.
func WithOnShell(fn func(depth int, shell []core.AuthorID) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnShell = fn
		}
	}
}

// Result is the outcome of a neighborhood search:
//   - Shells[k] holds the authors at exactly k hops from Center, ascending.
//     Shells[0] is {Center}. Trailing empty shells are not stored, so
//     len(Shells) can be smaller than Hops+1.
//   - Depth maps every discovered author to its hop distance.
//   - Subgraph is the induced subgraph over all discovered authors: every
//     edge of the source graph between two of them, including edges inside
//     one shell and edges between different shells.
type Result struct {
	Center   core.AuthorID
	Hops     int
	Shells   [][]core.AuthorID
	Depth    map[core.AuthorID]int
	Subgraph *core.Graph
}

// Members returns every discovered author ordered by hop distance, then id.
func (r *Result) Members() []core.AuthorID {
	out := make([]core.AuthorID, 0, len(r.Depth))
	for _, shell := range r.Shells {
		out = append(out, shell...)
	}

	return out
}

// Size returns the number of discovered authors.
func (r *Result) Size() int { return len(r.Depth) }

// Within returns the authors at most d hops away. d larger than the search
// radius is clamped; a negative d yields nil.
func (r *Result) Within(d int) []core.AuthorID {
	if d < 0 {
		return nil
	}
	var out []core.AuthorID
	for k := 0; k <= d && k < len(r.Shells); k++ {
		out = append(out, r.Shells[k]...)
	}

	return out
}
