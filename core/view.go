// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (induced subgraphs).
// Determinism:
//   - Views copy node attributes, edge weights and the phase of the source.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph containing the nodes of g whose ids are
// in keep, and every edge of g whose endpoints are both kept. Ids in keep that
// are not in g are ignored. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[AuthorID]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.phase = g.phase

	// Copy kept nodes (attribute maps are deep-copied so the view is independent).
	var id AuthorID
	var n *Node
	for id, n = range g.nodes {
		if !keep[id] {
			continue
		}
		cp := cloneNode(n)
		out.nodes[id] = &cp
		out.adjacency[id] = make(map[AuthorID]*Edge)
	}

	// Copy edges whose endpoints both survived.
	var k edgeKey
	var e *Edge
	for k, e = range g.edges {
		if !keep[k.from] || !keep[k.to] {
			continue
		}
		ne := &Edge{From: e.From, To: e.To, Weight: e.Weight, Weighted: e.Weighted}
		out.edges[k] = ne
		out.adjacency[k.from][k.to] = ne
		out.adjacency[k.to][k.from] = ne
	}

	return out
}

// ConferenceSubgraph returns the subgraph induced by the authors who
// published at least once at the conference with integer id confID.
// An unknown conference yields an empty graph.
//
// Complexity: O(V + E).
func (g *Graph) ConferenceSubgraph(confID int64) *Graph {
	g.mu.RLock()
	keep := make(map[AuthorID]bool)
	for id, n := range g.nodes {
		if _, ok := n.Conferences[confID]; ok {
			keep[id] = true
		}
	}
	g.mu.RUnlock()

	return InducedSubgraph(g, keep)
}
