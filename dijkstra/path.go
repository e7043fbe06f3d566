package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/collabgraph/core"
)

// PathTo reconstructs the path from the source to target by walking Prev
// backwards, and returns it in source→target order with cumulative distances.
//
// Errors:
//   - core.ErrUnknownNode if target is not a node of the searched graph.
//   - ErrNoPath if the walk hits a node without predecessor before reaching
//     the source (the target is in another component, or the search stopped
//     before reaching it).
//
// Complexity: O(path length).
func (r *Result) PathTo(target core.AuthorID) ([]Step, error) {
	if _, ok := r.Dist[target]; !ok {
		return nil, fmt.Errorf("dijkstra: target %d: %w", target, core.ErrUnknownNode)
	}

	// build reversed path
	path := make([]Step, 0, 8)
	cur := target
	for {
		path = append(path, r.step(cur))
		if cur == r.Source {
			break
		}
		p, ok := r.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, r.Source, target)
		}
		// a predecessor chain longer than the node count means a corrupted map
		if len(path) > len(r.Dist) {
			return nil, fmt.Errorf("%w: predecessor cycle at %d", ErrNoPath, cur)
		}
		cur = p
	}

	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func (r *Result) step(id core.AuthorID) Step {
	s := Step{ID: id, Distance: r.Dist[id]}
	if r.g != nil {
		s.Name, _ = r.g.AuthorName(id)
	}

	return s
}

// PathBetween returns the shortest path from hub to target in hub→target
// order. The search is rooted at hub and stops as soon as target is settled.
//
// Errors:
//   - ErrNilGraph, core.ErrPrematureWeight as ShortestPath.
//   - core.ErrUnknownNode if hub or target is absent.
//   - ErrNoPath if they lie in different components.
func PathBetween(g *core.Graph, hub, target core.AuthorID) ([]Step, error) {
	res, err := ShortestPath(g, hub, WithTarget(target))
	if err != nil {
		return nil, err
	}

	return res.PathTo(target)
}
