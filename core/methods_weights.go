// SPDX-License-Identifier: MIT
//
// File: methods_weights.go
// Role: Second build phase: Jaccard-distance edge weights and finalization.
// Concurrency:
//   - AssignWeights holds the write lock; Weight takes a read lock.

package core

import "fmt"

// AssignWeights fixes the weight of every edge to the Jaccard distance of
// its endpoints' publication-id sets and moves the graph to PhaseFinalized.
//
//	weight(a,b) = 1 − |pubs(a) ∩ pubs(b)| / |pubs(a) ∪ pubs(b)|
//
// The union is never empty for an existing edge: both endpoints carry at
// least the publication that created the edge.
//
// Precondition: every entry has been added. Running it on a partially
// ingested graph cannot be detected structurally; once it has run, AddEntry
// returns ErrFinalized so nothing can invalidate the weights afterwards.
// Calling it again is idempotent.
//
// Complexity: O(E · P) where P bounds the publication count of an endpoint.
func (g *Graph) AssignWeights() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var e *Edge
	for _, e = range g.edges {
		w, err := jaccardDistance(g.nodes[e.From], g.nodes[e.To])
		if err != nil {
			return fmt.Errorf("edge %d–%d: %w", e.From, e.To, err)
		}
		e.Weight = w
		e.Weighted = true
	}
	g.phase = PhaseFinalized

	return nil
}

// jaccardDistance returns 1 minus the Jaccard similarity of the publication
// key sets of a and b.
func jaccardDistance(a, b *Node) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrUnknownNode
	}
	small, large := a.Publications, b.Publications
	if len(small) > len(large) {
		small, large = large, small
	}
	shared := 0
	for id := range small {
		if _, ok := large[id]; ok {
			shared++
		}
	}
	union := len(small) + len(large) - shared
	if union == 0 {
		return 0, fmt.Errorf("%w: endpoints have no publications", ErrIngestion)
	}

	return 1 - float64(shared)/float64(union), nil
}

// Weight returns the weight of the edge between a and b.
//
// Errors:
//   - ErrUnknownNode if either author is absent.
//   - ErrEdgeNotFound if they never co-authored.
//   - ErrPrematureWeight if AssignWeights has not run.
func (g *Graph) Weight(a, b AuthorID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.requireNodes(a, b); err != nil {
		return 0, err
	}
	e, ok := g.adjacency[a][b]
	if !ok {
		return 0, fmt.Errorf("%w: %d–%d", ErrEdgeNotFound, a, b)
	}
	if !e.Weighted {
		return 0, ErrPrematureWeight
	}

	return e.Weight, nil
}

// Phase reports the lifecycle state of the graph.
func (g *Graph) Phase() Phase {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.phase
}

// Finalized reports whether weights have been assigned.
func (g *Graph) Finalized() bool { return g.Phase() == PhaseFinalized }
