// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Level-synchronous breadth-first search producing hop shells and the
//       induced neighborhood subgraph.
// Determinism:
//   - Each shell is sorted ascending; the frontier is expanded in that order.
// Concurrency:
//   - Read-only on the source graph; safe alongside other readers.

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/collabgraph/core"
)

// walker encapsulates mutable search state.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// Neighborhood returns the authors within maxHops co-authorship hops of
// center, grouped into shells by exact hop distance, plus the subgraph they
// induce. Topology only: legal in both graph phases; the subgraph inherits
// the phase and weights of g.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrOptionViolation for maxHops < 0 or an invalid Option.
//   - core.ErrUnknownNode if center is absent.
//   - ctx.Err() on cancellation, or the error returned by OnShell.
//
// Complexity: O(V + E) over the explored region, plus O(V + E) for the
// subgraph copy.
func Neighborhood(g *core.Graph, center core.AuthorID, maxHops int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxHops < 0 {
		return nil, fmt.Errorf("%w: hops cannot be negative (%d)", ErrOptionViolation, maxHops)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(center) {
		return nil, fmt.Errorf("bfs: center %d: %w", center, core.ErrUnknownNode)
	}

	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Center: center,
			Hops:   maxHops,
			Depth:  map[core.AuthorID]int{center: 0},
		},
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	keep := make(map[core.AuthorID]bool, len(w.res.Depth))
	for id := range w.res.Depth {
		keep[id] = true
	}
	w.res.Subgraph = core.InducedSubgraph(g, keep)

	return w.res, nil
}

// loop expands one shell per iteration until maxHops is reached or the
// frontier empties.
func (w *walker) loop() error {
	frontier := []core.AuthorID{w.res.Center}
	for depth := 0; ; depth++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.res.Shells = append(w.res.Shells, frontier)
		if err := w.opts.OnShell(depth, frontier); err != nil {
			return fmt.Errorf("bfs: OnShell error at depth %d: %w", depth, err)
		}
		if depth == w.res.Hops {
			return nil
		}

		next, err := w.expand(frontier, depth+1)
		if err != nil {
			return err
		}
		if len(next) == 0 {
			return nil
		}
		frontier = next
	}
}

// expand collects every unseen neighbor of the frontier, records its depth
// and returns them sorted.
func (w *walker) expand(frontier []core.AuthorID, depth int) ([]core.AuthorID, error) {
	var next []core.AuthorID
	for _, u := range frontier {
		nbrs, err := w.graph.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: failed to get neighbors of %d: %w", u, err)
		}
		for _, v := range nbrs {
			if _, seen := w.res.Depth[v]; seen {
				continue
			}
			w.res.Depth[v] = depth
			next = append(next, v)
		}
	}
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })

	return next, nil
}
