// Package dfs finds connected components of the co-authorship graph with an
// iterative depth-first search.
//
//   - Component(g, id) returns the component of one author.
//   - Components(g) partitions the whole graph.
//
// Components are reported as sorted author ids. The search uses topology
// only, so it works on a graph in either phase.
//
// Errors:
//
//   - ErrGraphNil           if g is nil.
//   - ErrOptionViolation    for a nil context.
//   - core.ErrUnknownNode   if the start author is missing.
//   - context.Canceled      if ctx is done.
//   - any error returned by OnVisit.
package dfs
