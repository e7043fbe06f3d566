// SPDX-License-Identifier: MIT
//
// File: methods_entries.go
// Role: Incremental graph construction from bibliographic entries.
// Determinism:
//   - The result of a sequence of AddEntry calls does not depend on map order.
// Concurrency:
//   - AddEntry holds the write lock for the whole entry.

package core

import "fmt"

// AddEntry folds one bibliographic entry into the graph.
//
// Steps:
//  1. Reject the call if the graph is finalized (ErrFinalized).
//  2. Validate the entry as a whole before touching the graph (ErrIngestion).
//  3. For every author: create the node if absent (the first name seen is kept),
//     then insert/overwrite the publication and conference keyed by integer id.
//  4. For every unordered pair of authors ensure an edge with an unset weight.
//
// Atomicity: validation happens before any mutation and the mutation itself
// cannot fail, so either the whole entry applies or nothing does.
//
// Repeated author ids inside one entry are collapsed; an author is never
// linked to itself.
//
// Complexity: O(k²) for k authors.
func (g *Graph) AddEntry(e Entry) error {
	authors, err := validateEntry(e)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseBuilding {
		return ErrFinalized
	}

	// 3) nodes and attribute maps
	var a Author
	var n *Node
	for _, a = range authors {
		n = g.ensureNode(a)
		n.Publications[e.Publication.IntID] = e.Publication
		n.Conferences[e.Conference.IntID] = e.Conference
	}

	// 4) pairwise edges
	var i, j int
	for i = 0; i < len(authors); i++ {
		for j = i + 1; j < len(authors); j++ {
			g.ensureEdge(authors[i].ID, authors[j].ID)
		}
	}

	return nil
}

// validateEntry checks the entry and returns its author list with duplicate
// ids removed (first occurrence wins).
func validateEntry(e Entry) ([]Author, error) {
	if len(e.Authors) == 0 {
		return nil, fmt.Errorf("%w: publication %q has no authors", ErrIngestion, e.Publication.StrID)
	}
	// publications are keyed by IntID; a zero key would merge distinct papers
	if e.Publication.IntID == 0 {
		return nil, fmt.Errorf("%w: publication %q has no integer id", ErrIngestion, e.Publication.StrID)
	}

	seen := make(map[AuthorID]struct{}, len(e.Authors))
	out := make([]Author, 0, len(e.Authors))
	for idx, a := range e.Authors {
		if a.ID == 0 {
			return nil, fmt.Errorf("%w: author #%d of publication %q has no id", ErrIngestion, idx, e.Publication.StrID)
		}
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}

	return out, nil
}

// ensureNode returns the node for a, creating it if missing. Caller holds the write lock.
func (g *Graph) ensureNode(a Author) *Node {
	if n, ok := g.nodes[a.ID]; ok {
		return n
	}
	n := &Node{
		Author:       a,
		Publications: make(map[int64]Publication),
		Conferences:  make(map[int64]Conference),
	}
	g.nodes[a.ID] = n
	g.adjacency[a.ID] = make(map[AuthorID]*Edge)

	return n
}

// ensureEdge links a and b with an unweighted edge unless one already exists.
// Caller holds the write lock and guarantees a != b and both nodes exist.
func (g *Graph) ensureEdge(a, b AuthorID) *Edge {
	k := keyOf(a, b)
	if e, ok := g.edges[k]; ok {
		return e
	}
	e := &Edge{From: k.from, To: k.to}
	g.edges[k] = e
	g.adjacency[a][b] = e
	g.adjacency[b][a] = e

	return e
}
