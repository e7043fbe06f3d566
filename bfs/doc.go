// Package bfs extracts the hop-limited neighborhood of an author.
//
// Neighborhood runs a level-synchronous breadth-first search from a center
// author and reports:
//
//   - Shells: Shells[k] is the set of authors at exactly k hops, ascending.
//     Shells are pairwise disjoint; their union grows monotonically with the
//     hop limit.
//   - Subgraph: the subgraph of the source graph induced by every discovered
//     author. It keeps edges inside a shell as well as edges across shells,
//     which a BFS tree alone would miss.
//
// Hop distance ignores weights, so the search works on a graph that is still
// building; the subgraph copies whatever phase and weights the source has.
//
// Errors:
//
//   - ErrGraphNil, ErrOptionViolation (negative hops, nil context).
//   - core.ErrUnknownNode for an absent center.
//
// Example:
//
//	res, err := bfs.Neighborhood(g, hub, 2)
//	if err != nil { ... }
//	fmt.Println(len(res.Shells[1]), res.Subgraph.EdgeCount())
package bfs
