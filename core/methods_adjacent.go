// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree).
// Determinism:
//   - Neighbors() and NeighborIDs() are sorted by neighbor id ascending.
// Concurrency:
//   - Read lock only.

package core

import (
	"fmt"
	"sort"
)

// Neighbor is one adjacent author and the weight of the connecting edge.
// Weighted mirrors Edge.Weighted.
type Neighbor struct {
	ID       AuthorID
	Weight   float64
	Weighted bool
}

// Neighbors returns the authors adjacent to id with edge weights, sorted by id.
//
// Errors:
//   - ErrUnknownNode if id is absent.
//
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id AuthorID) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	out := make([]Neighbor, 0, len(adj))
	for nb, e := range adj {
		out = append(out, Neighbor{ID: nb, Weight: e.Weight, Weighted: e.Weighted})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the ids adjacent to id, ascending. Topology only: legal
// in every phase.
func (g *Graph) NeighborIDs(id AuthorID) ([]AuthorID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	out := make([]AuthorID, 0, len(adj))
	for nb := range adj {
		out = append(out, nb)
	}
	sortIDs(out)

	return out, nil
}

// Degree returns the number of distinct co-authors of id.
func (g *Graph) Degree(id AuthorID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return len(adj), nil
}

// HasEdge reports whether a and b co-authored at least one entry.
func (g *Graph) HasEdge(a, b AuthorID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}
