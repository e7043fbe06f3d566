// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Central Graph, Node, Edge and Entry types, phases, sentinel errors,
//       and the NewGraph constructor.
// Concurrency:
//   - A single sync.RWMutex guards nodes, edges and adjacency.
//   - Queries take read locks; AddEntry/AssignWeights take the write lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrIngestion indicates a malformed entry (no authors, missing author or publication id).
	ErrIngestion = errors.New("core: malformed entry")

	// ErrUnknownNode indicates an operation referenced an author id absent from the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEdgeNotFound indicates that two authors share no edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrFinalized indicates a mutation was attempted after AssignWeights.
	ErrFinalized = errors.New("core: graph is finalized")

	// ErrPrematureWeight indicates edge weights were read before AssignWeights ran.
	ErrPrematureWeight = errors.New("core: edge weights not assigned yet")

	// ErrBadSnapshot indicates a snapshot that violates graph invariants.
	ErrBadSnapshot = errors.New("core: invalid snapshot")
)

// AuthorID uniquely identifies an author (node) in the graph. Immutable once assigned.
type AuthorID int64

// Author is the identity of a node.
type Author struct {
	ID   AuthorID `json:"id"`
	Name string   `json:"name"`
}

// Publication summarizes one publication an author took part in.
type Publication struct {
	StrID string `json:"id_str"`
	IntID int64  `json:"id_int"`
	Title string `json:"title"`
}

// Conference summarizes the venue a publication appeared at.
type Conference struct {
	StrID string `json:"id_str"`
	IntID int64  `json:"id_int"`
}

// Node is an author together with every publication and conference
// accumulated for it during building. The maps are keyed by integer ids,
// only grow while the graph is building and are read-only afterwards.
type Node struct {
	Author       Author                `json:"author"`
	Publications map[int64]Publication `json:"publications"`
	Conferences  map[int64]Conference  `json:"conferences"`
}

// Edge is an undirected co-authorship link between two distinct authors.
// Endpoints are stored canonically with From < To. Weight is meaningful only
// once Weighted is true (after AssignWeights).
type Edge struct {
	From     AuthorID `json:"from"`
	To       AuthorID `json:"to"`
	Weight   float64  `json:"weight"`
	Weighted bool     `json:"weighted"`
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id AuthorID) AuthorID {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Entry is one normalized bibliographic record: a publication, the conference
// it appeared at and its author list.
type Entry struct {
	Publication Publication
	Conference  Conference
	Authors     []Author
}

// Phase is the lifecycle state of a Graph.
type Phase int

const (
	// PhaseBuilding accepts AddEntry; weights are unset.
	PhaseBuilding Phase = iota

	// PhaseFinalized has weights assigned and rejects further entries.
	PhaseFinalized
)

// String returns a lower-case label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// edgeKey is the canonical (From < To) key of an undirected edge.
type edgeKey struct {
	from, to AuthorID
}

func keyOf(a, b AuthorID) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{from: a, to: b}
}

// Graph is the in-memory co-authorship graph.
//
// Nodes are keyed by AuthorID. Edges are stored once in the edge catalog and
// referenced from both endpoints in the adjacency map:
// adjacency[a][b] == adjacency[b][a] == edges[keyOf(a,b)].
type Graph struct {
	mu sync.RWMutex

	phase Phase

	nodes     map[AuthorID]*Node
	edges     map[edgeKey]*Edge
	adjacency map[AuthorID]map[AuthorID]*Edge
}

// NewGraph creates an empty Graph in PhaseBuilding.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		phase:     PhaseBuilding,
		nodes:     make(map[AuthorID]*Node),
		edges:     make(map[edgeKey]*Edge),
		adjacency: make(map[AuthorID]map[AuthorID]*Edge),
	}
}

// WeightedView is the read-only capability an external graph-metrics
// component needs: the node set, the weighted edge set and author names.
// *Graph satisfies it once finalized.
type WeightedView interface {
	Nodes() []AuthorID
	Edges() ([]Edge, error)
	AuthorName(id AuthorID) (string, error)
}

var _ WeightedView = (*Graph)(nil)
