// Package core provides the in-memory co-authorship graph: authors as nodes,
// co-authorship as undirected edges weighted by publication overlap.
//
// The Graph G = (V,E) is built in two phases:
//
//   - Building: AddEntry folds bibliographic entries into the graph. Each
//     entry creates missing author nodes, records the publication and
//     conference on every author, and links every pair of co-authors with an
//     edge whose weight is still unset.
//   - Finalized: AssignWeights sets every edge weight to the Jaccard distance
//     of the endpoints' publication sets and freezes the graph. Further
//     AddEntry calls fail with ErrFinalized.
//
// Guarantees:
//
//   - Undirected, no self-loops, at most one edge per pair of authors.
//   - weight(a,b) = 1 − |pubs(a) ∩ pubs(b)| / |pubs(a) ∪ pubs(b)|, in [0,1).
//   - Deterministic iteration: Nodes(), Edges(), Neighbors() are sorted.
//   - Entry-level atomicity: a malformed entry (ErrIngestion) changes nothing.
//
// Views:
//
//	– InducedSubgraph(g, keep)   nodes in keep plus every edge between them
//	– g.ConferenceSubgraph(id)   authors who published at a conference
//	– WeightedView               the capability consumed by external metrics
//
// Snapshots (Snapshot / FromSnapshot) carry a graph across process boundaries
// without exposing internal maps.
//
// Errors:
//
//	ErrIngestion       - malformed entry.
//	ErrUnknownNode     - requested author does not exist.
//	ErrEdgeNotFound    - the two authors never co-authored.
//	ErrFinalized       - AddEntry after AssignWeights.
//	ErrPrematureWeight - weights read before AssignWeights.
//	ErrBadSnapshot     - snapshot violates graph invariants.
package core
