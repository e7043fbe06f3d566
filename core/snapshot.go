// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Plain-value representation of a Graph for persistence and fixtures.
// Determinism:
//   - Snapshot() orders nodes by id and edges by (From, To).

package core

import "fmt"

// Snapshot is a serializable copy of a Graph.
type Snapshot struct {
	Phase Phase  `json:"phase"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Snapshot returns a deep copy of the graph as plain values.
// Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]AuthorID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sortIDs(ids)

	s := Snapshot{
		Phase: g.phase,
		Nodes: make([]Node, 0, len(ids)),
		Edges: g.edgeList(),
	}
	for _, id := range ids {
		s.Nodes = append(s.Nodes, cloneNode(g.nodes[id]))
	}

	return s
}

// FromSnapshot rebuilds a Graph from s.
//
// Validation:
//   - node ids are unique;
//   - edges join two distinct known nodes and appear once;
//   - a finalized snapshot carries weights in [0,1] on every edge.
//
// Errors wrap ErrBadSnapshot.
// Complexity: O(V + E).
func FromSnapshot(s Snapshot) (*Graph, error) {
	g := NewGraph()
	g.phase = s.Phase

	for _, n := range s.Nodes {
		if _, dup := g.nodes[n.Author.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node %d", ErrBadSnapshot, n.Author.ID)
		}
		cp := cloneNode(&n)
		g.nodes[n.Author.ID] = &cp
		g.adjacency[n.Author.ID] = make(map[AuthorID]*Edge)
	}

	for _, e := range s.Edges {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: self-loop on %d", ErrBadSnapshot, e.From)
		}
		if err := g.requireNodes(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
		}
		k := keyOf(e.From, e.To)
		if _, dup := g.edges[k]; dup {
			return nil, fmt.Errorf("%w: duplicate edge %d–%d", ErrBadSnapshot, k.from, k.to)
		}
		if s.Phase == PhaseFinalized && (!e.Weighted || !(e.Weight >= 0 && e.Weight < 1)) {
			return nil, fmt.Errorf("%w: edge %d–%d has invalid weight %v", ErrBadSnapshot, k.from, k.to, e.Weight)
		}
		ne := &Edge{From: k.from, To: k.to, Weight: e.Weight, Weighted: e.Weighted}
		g.edges[k] = ne
		g.adjacency[k.from][k.to] = ne
		g.adjacency[k.to][k.from] = ne
	}

	return g, nil
}
