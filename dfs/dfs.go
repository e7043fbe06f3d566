// SPDX-License-Identifier: MIT
//
// File: dfs.go
// Role: Iterative depth-first search for connected components.
// Determinism:
//   - Neighbors are pushed in descending id order so they pop ascending;
//     every returned component is sorted.
// Concurrency:
//   - Read-only on the graph.

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/collabgraph/core"
)

// walker encapsulates state shared by every tree of one traversal.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited map[core.AuthorID]bool
}

func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker{graph: g, opts: o, visited: make(map[core.AuthorID]bool)}, nil
}

// Component returns the connected component containing id, ascending.
// Topology only: legal in both graph phases.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrUnknownNode, ctx.Err(),
// or the error returned by OnVisit.
//
// Complexity: O(V + E) over the component.
func Component(g *core.Graph, id core.AuthorID, opts ...Option) ([]core.AuthorID, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(id) {
		return nil, fmt.Errorf("dfs: start %d: %w", id, core.ErrUnknownNode)
	}

	return w.traverse(id)
}

// Components partitions the graph into connected components. Each component
// is sorted ascending and components are ordered by their smallest id.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]core.AuthorID, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	var out [][]core.AuthorID
	for _, v := range g.Nodes() {
		if w.visited[v] {
			continue
		}
		comp, err := w.traverse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, comp)
	}

	return out, nil
}

// traverse explores everything reachable from root with an explicit stack.
func (w *walker) traverse(root core.AuthorID) ([]core.AuthorID, error) {
	var comp []core.AuthorID
	stack := []core.AuthorID{root}
	w.visited[root] = true

	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// 2. Pop and visit
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, u)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(u); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook for %d: %w", u, err)
			}
		}

		// 3. Push unvisited neighbors, largest first
		nbs, err := w.graph.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("dfs: NeighborIDs(%d): %w", u, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			if w.visited[nbs[i]] {
				continue
			}
			w.visited[nbs[i]] = true
			stack = append(stack, nbs[i])
		}
	}
	sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })

	return comp, nil
}
