// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Build driver: decode every record, fold it into a graph, then fix
//       the edge weights.

package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/collabgraph/core"
)

// progressEvery is how many records pass between two progress log lines.
const progressEvery = 10000

// Stats summarizes a build. Records counts every array element read,
// Skipped the ones that were rejected.
type Stats struct {
	Records int `json:"records"`
	Skipped int `json:"skipped"`
	Nodes   int `json:"nodes"`
	Edges   int `json:"edges"`
}

// Option configures a Builder.
type Option func(*Builder)

// WithStrict makes the first bad record abort the whole build.
func WithStrict(strict bool) Option {
	return func(b *Builder) { b.strict = strict }
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Builder turns a dataset into a finalized graph.
type Builder struct {
	strict bool
	logger logrus.FieldLogger
}

// NewBuilder returns a lenient Builder unless WithStrict(true) is given.
func NewBuilder(opts ...Option) *Builder {
	discard := logrus.New()
	discard.Out = io.Discard
	b := &Builder{logger: discard}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.WithField("module", "ingest")

	return b
}

// Build reads a JSON array of records from r and returns the finalized graph.
//
// Lenient mode logs and skips records that fail to decode or validate.
// Strict mode returns the first *RecordError. Broken JSON (ErrFormat) and
// context cancellation abort in both modes.
func (b *Builder) Build(ctx context.Context, r io.Reader) (*core.Graph, Stats, error) {
	var stats Stats
	g := core.NewGraph()
	dec := NewDecoder(r)

	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		stats.Records = dec.Index()
		if err == nil {
			if aerr := g.AddEntry(rec.Entry()); aerr != nil {
				err = &RecordError{Index: dec.Index() - 1, Err: aerr}
			}
		}
		if err != nil {
			var recErr *RecordError
			if !errors.As(err, &recErr) || b.strict {
				return nil, stats, err
			}
			stats.Skipped++
			b.logger.WithError(err).Warn("skipping record")
		}

		if dec.Index()%progressEvery == 0 {
			b.logger.WithField("records", dec.Index()).Debug("ingesting")
		}
	}

	if err := g.AssignWeights(); err != nil {
		return nil, stats, fmt.Errorf("ingest: assign weights: %w", err)
	}
	stats.Nodes = g.NodeCount()
	stats.Edges = g.EdgeCount()
	b.logger.WithFields(logrus.Fields{
		"records": stats.Records,
		"skipped": stats.Skipped,
		"nodes":   stats.Nodes,
		"edges":   stats.Edges,
	}).Info("graph built")

	return g, stats, nil
}

// BuildFile opens path and calls Build.
func (b *Builder) BuildFile(ctx context.Context, path string) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return b.Build(ctx, f)
}
