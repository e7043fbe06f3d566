// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// co-authorship graph.
//
// Edge weights are Jaccard distances in [0,1), so Dijkstra is exact.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions from the heap.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - The heap is keyed by (distance, insertion sequence): ties are broken by
//     insertion order, deterministically for a given graph.
//   - "Lazy" decrease-key: improved distances push a new entry; stale entries
//     are skipped when popped.
//   - With a target, the loop stops when the target is popped, not when it is
//     first relaxed.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/collabgraph/core"
)

// ShortestPath computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrBadMaxDistance).
//  3. g must be finalized (core.ErrPrematureWeight).
//  4. source, and the target if set, must exist (core.ErrUnknownNode).
//
// Returns a Result whose Dist covers every node (+Inf when unreached) and
// whose Prev holds one predecessor per reached node other than the source.
func ShortestPath(g *core.Graph, source core.AuthorID, opts ...Option) (*Result, error) {
	// 1) Validate graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Weights must be final
	if !g.Finalized() {
		return nil, core.ErrPrematureWeight
	}

	// 4) Endpoints must exist
	if !g.HasNode(source) {
		return nil, fmt.Errorf("dijkstra: source %d: %w", source, core.ErrUnknownNode)
	}
	if cfg.HasTarget && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("dijkstra: target %d: %w", cfg.Target, core.ErrUnknownNode)
	}

	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.AuthorID]float64, len(nodes)),
		prev:    make(map[core.AuthorID]core.AuthorID, len(nodes)),
		visited: make(map[core.AuthorID]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	r.init(source, nodes)
	complete, err := r.process()
	if err != nil {
		return nil, err
	}

	return &Result{
		Source:   source,
		Dist:     r.dist,
		Prev:     r.prev,
		Complete: complete,
		g:        g,
	}, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.AuthorID]float64
	prev    map[core.AuthorID]core.AuthorID
	visited map[core.AuthorID]bool
	pq      nodePQ
	seq     uint64
}

// init sets every distance to +Inf, the source to zero, and seeds the heap.
func (r *runner) init(source core.AuthorID, nodes []core.AuthorID) {
	for _, v := range nodes {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

// process is the main loop. It returns false when it stopped at the target.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// target reached: stop with whatever has been computed so far
		if r.options.HasTarget && u == r.options.Target {
			return false, nil
		}
		// stale entry
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u, item.dist); err != nil {
			return false, err
		}
	}

	return true, nil
}

// relax tries to improve the distance of every unsettled neighbor of u.
func (r *runner) relax(u core.AuthorID, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var nb core.Neighbor
	var alt float64
	for _, nb = range neighbors {
		if r.visited[nb.ID] {
			continue
		}
		alt = du + nb.Weight
		if alt > r.options.MaxDistance {
			continue
		}
		// strictly better only; equal distances keep the first predecessor found
		if alt >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = alt
		r.prev[nb.ID] = u
		r.push(nb.ID, alt)
	}

	return nil
}

func (r *runner) push(id core.AuthorID, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// nodeItem is a heap entry: a node, its tentative distance and its insertion sequence.
type nodeItem struct {
	id   core.AuthorID
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
