// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node and edge queries consumed by algorithms and presentation layers.
// Determinism:
//   - Nodes() returns ids ascending; Edges() sorts by (From, To).
// Concurrency:
//   - All methods take the read lock; returned values are copies.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// HasNode reports whether id is present in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id AuthorID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node for id; mutating the copy does not affect the graph.
func (g *Graph) Node(id AuthorID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return cloneNode(n), nil
}

// AuthorName returns the display name of id.
func (g *Graph) AuthorName(id AuthorID) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return n.Author.Name, nil
}

// FindByName returns the lowest author id whose name equals name,
// ignoring case and surrounding spaces.
// Complexity: O(V).
func (g *Graph) FindByName(name string) (AuthorID, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return 0, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		found AuthorID
		ok    bool
	)
	for id, n := range g.nodes {
		if strings.ToLower(strings.TrimSpace(n.Author.Name)) != want {
			continue
		}
		if !ok || id < found {
			found, ok = id, true
		}
	}

	return found, ok
}

// Nodes returns every author id in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []AuthorID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]AuthorID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sortIDs(ids)

	return ids
}

// Edges returns a copy of every edge sorted by (From, To).
// Fails with ErrPrematureWeight while the graph is still building, since the
// weights would be meaningless.
// Complexity: O(E log E).
func (g *Graph) Edges() ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.phase != PhaseFinalized {
		return nil, ErrPrematureWeight
	}

	return g.edgeList(), nil
}

// edgeList copies and sorts the edge catalog. Caller holds a lock.
func (g *Graph) edgeList() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// NodeCount returns the number of authors.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of co-authorship edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// requireNodes returns ErrUnknownNode for the first absent id. Caller holds a lock.
func (g *Graph) requireNodes(ids ...AuthorID) error {
	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownNode, id)
		}
	}

	return nil
}

func cloneNode(n *Node) Node {
	out := Node{
		Author:       n.Author,
		Publications: make(map[int64]Publication, len(n.Publications)),
		Conferences:  make(map[int64]Conference, len(n.Conferences)),
	}
	for k, v := range n.Publications {
		out.Publications[k] = v
	}
	for k, v := range n.Conferences {
		out.Conferences[k] = v
	}

	return out
}

func sortIDs(ids []AuthorID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
