// Package dijkstra provides weighted shortest paths over the co-authorship
// graph: single-source distance maps, point-to-point search with early exit,
// and full path reconstruction.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost distance from one author to every
//     other author in O((V + E) log V), using a binary min-heap.
//   - With WithTarget the search ends as soon as the target is popped from the
//     frontier; the returned maps are partial and Result.Complete is false.
//   - Result.PathTo walks the predecessor map back to the source and returns
//     the ordered steps with cumulative distances.
//   - PathBetween roots the search at a fixed hub author and returns the
//     hub→target path.
//
// Tie-breaking:
//
//   - Heap entries with equal distance pop in insertion order. The first
//     predecessor that achieves a distance keeps it; later equal-cost
//     alternatives do not replace it. Results are deterministic for a given
//     graph, but callers should only rely on distances when ties exist.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph.
//   - ErrBadMaxDistance:  negative or NaN WithMaxDistance.
//   - ErrNoPath:          target unreachable; a normal outcome on disconnected graphs.
//   - core.ErrUnknownNode: source or target absent (always surfaced, never defaulted).
//   - core.ErrPrematureWeight: graph still building.
//
// Thread safety:
//
//   - Searches only read the graph; any number may run concurrently on a
//     finalized graph.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, source core.AuthorID, opts ...Option) (*Result, error)
//	func PathBetween(g *core.Graph, hub, target core.AuthorID) ([]Step, error)
//	func (r *Result) PathTo(target core.AuthorID) ([]Step, error)
package dijkstra
