// SPDX-License-Identifier: MIT
//
// File: group.go
// Role: Multi-seed labeling by nearest-seed distance.
// Determinism:
//   - The result is an element-wise minimum and does not depend on the
//     order in which searches finish.
// Concurrency:
//   - One goroutine per seed, bounded by Workers. Each writes only its own
//     slot; the reduction runs after every search has returned.

package group

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/dijkstra"
)

// LabelByNearestSeed labels every author of g with the distance to its
// nearest seed.
//
// Steps:
//  1. Drop seeds absent from g (logged at warn level) and duplicates.
//  2. Run a full single-source search from each remaining seed.
//  3. Fold the distance maps with an element-wise minimum.
//
// With no valid seed every label is +Inf. Labels of a single seed equal the
// distances of dijkstra.ShortestPath from it.
//
// A nil ctx is treated as context.Background().
//
// Errors: ErrNilGraph, ErrBadWorkers, core.ErrPrematureWeight, ctx.Err().
//
// Complexity: O(S · (V + E) log V) for S seeds.
func LabelByNearestSeed(ctx context.Context, g *core.Graph, seeds []core.AuthorID, opts ...Option) (Labels, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Finalized() {
		return nil, core.ErrPrematureWeight
	}
	log := o.Logger.WithField("module", "group")

	// 1) valid, distinct seeds
	valid := make([]core.AuthorID, 0, len(seeds))
	seen := make(map[core.AuthorID]bool, len(seeds))
	for _, s := range seeds {
		if seen[s] {
			continue
		}
		seen[s] = true
		if !g.HasNode(s) {
			log.WithField("seed", s).Warn("seed is not in the graph; skipping")
			continue
		}
		valid = append(valid, s)
	}

	// 2) independent searches
	dists := make([]map[core.AuthorID]float64, len(valid))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i, s := range valid {
		i, s := i, s
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := dijkstra.ShortestPath(g, s)
			if err != nil {
				return fmt.Errorf("group: seed %d: %w", s, err)
			}
			dists[i] = res.Dist
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3) reduction
	labels := make(Labels, g.NodeCount())
	for _, id := range g.Nodes() {
		labels[id] = math.Inf(1)
	}
	for _, dist := range dists {
		for id, d := range dist {
			if d < labels[id] {
				labels[id] = d
			}
		}
	}
	log.WithField("seeds", len(valid)).WithField("reached", labels.Reached()).Debug("labeling done")

	return labels, nil
}
