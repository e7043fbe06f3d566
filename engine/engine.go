// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Load-or-build lifecycle and the query facade used by the CLI.
// Concurrency:
//   - After Open returns, every query only reads the finalized graph and may
//     run concurrently.

package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/collabgraph/bfs"
	"github.com/katalvlaran/collabgraph/config"
	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/dfs"
	"github.com/katalvlaran/collabgraph/dijkstra"
	"github.com/katalvlaran/collabgraph/export"
	"github.com/katalvlaran/collabgraph/group"
	"github.com/katalvlaran/collabgraph/ingest"
	"github.com/katalvlaran/collabgraph/store"
)

// ErrHubNotFound indicates the configured hub name matches no author.
var ErrHubNotFound = errors.New("engine: hub author not found")

// Source tells where the graph of an Engine came from.
type Source string

const (
	SourceCache   Source = "cache"
	SourceDataset Source = "dataset"
)

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	rebuild bool
}

// WithRebuild ignores any cached graph and rebuilds from the dataset.
func WithRebuild(rebuild bool) Option {
	return func(o *openOptions) { o.rebuild = rebuild }
}

// Engine owns one finalized graph and answers queries on it.
type Engine struct {
	cfg     *config.Config
	variant store.Variant
	graph   *core.Graph
	source  Source
	stats   *ingest.Stats
	hub     core.AuthorID
	hasHub  bool
	logger  logrus.FieldLogger
}

// Open returns an Engine for variant.
//
// Steps:
//  1. Try the cache at cfg.Cache.Path.
//  2. On any cache miss or failure, build from the dataset (a fatal error
//     only if that fails too).
//  3. Save a freshly built graph; a failed save is logged and ignored.
//  4. Resolve the hub author by name.
func Open(ctx context.Context, cfg *config.Config, variant store.Variant, logger logrus.FieldLogger, opts ...Option) (*Engine, error) {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		cfg:     cfg,
		variant: variant,
		logger:  logger.WithFields(logrus.Fields{"module": "engine", "variant": variant}),
	}

	// 1) cache
	st, err := store.Open(cfg.Cache.Path, logger)
	if err != nil {
		e.logger.WithError(err).Warn("graph cache unavailable")
		st = nil
	}
	if st != nil {
		defer st.Close()
	}
	if st != nil && !o.rebuild {
		g, err := st.Load(variant)
		switch {
		case err == nil:
			e.graph, e.source = g, SourceCache
		case errors.Is(err, store.ErrNotFound):
			e.logger.Info("no cached graph; building from dataset")
		default:
			e.logger.WithError(err).Warn("cached graph unreadable; rebuilding")
		}
	}

	// 2) build
	if e.graph == nil {
		path := cfg.DatasetPath(variant == store.VariantReduced)
		g, stats, err := ingest.NewBuilder(
			ingest.WithStrict(cfg.Ingest.Strict),
			ingest.WithLogger(logger),
		).BuildFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("engine: build %s graph: %w", variant, err)
		}
		e.graph, e.source, e.stats = g, SourceDataset, &stats

		// 3) save
		if st != nil {
			if _, err := st.Save(variant, g); err != nil {
				e.logger.WithError(err).Warn("could not cache graph")
			}
		}
	}

	// 4) hub
	e.hub, e.hasHub = e.graph.FindByName(cfg.Hub.Name)
	if !e.hasHub {
		e.logger.WithField("hub", cfg.Hub.Name).Warn("hub author not in graph")
	}
	e.logger.WithFields(logrus.Fields{
		"source": e.source,
		"nodes":  e.graph.NodeCount(),
		"edges":  e.graph.EdgeCount(),
	}).Info("graph ready")

	return e, nil
}

// Graph returns the finalized graph.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Source reports whether the graph came from the cache or the dataset.
func (e *Engine) Source() Source { return e.source }

// BuildStats returns ingestion statistics, or nil when the graph was cached.
func (e *Engine) BuildStats() *ingest.Stats { return e.stats }

// Hub returns the hub author id, if the hub name matched an author.
func (e *Engine) Hub() (core.AuthorID, bool) { return e.hub, e.hasHub }

// PathToHub returns the shortest path from the hub to target.
//
// Errors: ErrHubNotFound, core.ErrUnknownNode, dijkstra.ErrNoPath.
func (e *Engine) PathToHub(target core.AuthorID) ([]dijkstra.Step, error) {
	if !e.hasHub {
		return nil, fmt.Errorf("%w: %q", ErrHubNotFound, e.cfg.Hub.Name)
	}

	return dijkstra.PathBetween(e.graph, e.hub, target)
}

// NeighborhoodReport is a neighborhood plus how much of the center's
// connected component it covers.
type NeighborhoodReport struct {
	*bfs.Result
	ComponentSize int
	// Coverage is the percentage of the component inside the neighborhood.
	Coverage float64
}

// Neighborhood returns the authors within hops of center and the subgraph
// they induce.
func (e *Engine) Neighborhood(ctx context.Context, center core.AuthorID, hops int) (*NeighborhoodReport, error) {
	res, err := bfs.Neighborhood(e.graph, center, hops, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	comp, err := dfs.Component(e.graph, center, dfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &NeighborhoodReport{
		Result:        res,
		ComponentSize: len(comp),
		Coverage:      100 * float64(res.Size()) / float64(len(comp)),
	}, nil
}

// GroupNumbers labels every author with the distance to its nearest seed.
func (e *Engine) GroupNumbers(ctx context.Context, seeds []core.AuthorID) (group.Labels, error) {
	workers := e.cfg.Labeling.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return group.LabelByNearestSeed(ctx, e.graph, seeds,
		group.WithWorkers(workers),
		group.WithLogger(e.logger),
	)
}

// ConferenceSubgraph returns the subgraph of authors who published at confID.
func (e *Engine) ConferenceSubgraph(confID int64) *core.Graph {
	return e.graph.ConferenceSubgraph(confID)
}

// Component returns the connected component of id.
func (e *Engine) Component(ctx context.Context, id core.AuthorID) ([]core.AuthorID, error) {
	return dfs.Component(e.graph, id, dfs.WithContext(ctx))
}

// Export writes the graph through client.
func (e *Engine) Export(ctx context.Context, client export.Client, opts ...export.Option) (export.Summary, error) {
	ex, err := export.New(client, append([]export.Option{export.WithLogger(e.logger)}, opts...)...)
	if err != nil {
		return export.Summary{}, err
	}

	return ex.Export(ctx, e.graph)
}
