// SPDX-License-Identifier: MIT
//
// File: exporter.go
// Role: Push a weighted co-authorship graph into a Cypher database so that
//       external tooling can compute centrality metrics on it.

package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/collabgraph/core"
)

// DefaultBatchSize is the number of rows sent per UNWIND statement.
const DefaultBatchSize = 1000

// ErrBadBatchSize is returned by New for a non-positive batch size.
var ErrBadBatchSize = errors.New("export: batch size must be positive")

const (
	cypherConstraint = `CREATE CONSTRAINT author_id IF NOT EXISTS FOR (a:Author) REQUIRE a.id IS UNIQUE`
	cypherReset      = `MATCH (a:Author) DETACH DELETE a`
	cypherNodes      = `UNWIND $rows AS row
MERGE (a:Author {id: row.id})
SET a.name = row.name`
	cypherEdges = `UNWIND $rows AS row
MATCH (a:Author {id: row.from}), (b:Author {id: row.to})
MERGE (a)-[r:COAUTHORED]-(b)
SET r.weight = row.weight`
	cypherCount = `MATCH (a:Author) RETURN count(a) AS n`
)

// Summary reports what an export wrote.
type Summary struct {
	Nodes      int
	Edges      int
	Statements int
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithBatchSize sets the number of rows per statement.
func WithBatchSize(n int) Option {
	return func(e *Exporter) { e.batch = n }
}

// WithReset deletes every :Author node before writing.
func WithReset(reset bool) Option {
	return func(e *Exporter) { e.reset = reset }
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// Exporter writes :Author nodes and :COAUTHORED relationships.
type Exporter struct {
	client Client
	batch  int
	reset  bool
	logger logrus.FieldLogger
}

// New returns an Exporter writing through client.
func New(client Client, opts ...Option) (*Exporter, error) {
	discard := logrus.New()
	discard.Out = io.Discard
	e := &Exporter{client: client, batch: DefaultBatchSize, logger: discard}
	for _, opt := range opts {
		opt(e)
	}
	if e.batch <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBatchSize, e.batch)
	}
	e.logger = e.logger.WithField("module", "export")

	return e, nil
}

// Export writes every author of view and every weighted edge.
//
// Steps:
//  1. Read all edges first so an unweighted view fails before any write.
//  2. Ping the database, ensure the uniqueness constraint, optionally wipe
//     old authors.
//  3. MERGE authors, then relationships, in UNWIND batches.
//
// Errors: core.ErrPrematureWeight from the view, or the first client error.
func (e *Exporter) Export(ctx context.Context, view core.WeightedView) (Summary, error) {
	var sum Summary

	// 1) gather
	edges, err := view.Edges()
	if err != nil {
		return sum, fmt.Errorf("export: read edges: %w", err)
	}
	ids := view.Nodes()
	nodeRows := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		name, err := view.AuthorName(id)
		if err != nil {
			return sum, fmt.Errorf("export: author %d: %w", id, err)
		}
		nodeRows = append(nodeRows, map[string]any{"id": int64(id), "name": name})
	}
	edgeRows := make([]map[string]any, 0, len(edges))
	for _, ed := range edges {
		edgeRows = append(edgeRows, map[string]any{
			"from":   int64(ed.From),
			"to":     int64(ed.To),
			"weight": ed.Weight,
		})
	}

	// 2) schema
	if err := e.client.Ping(ctx); err != nil {
		return sum, err
	}
	if _, err := e.client.Run(ctx, Statement{Cypher: cypherConstraint}); err != nil {
		return sum, fmt.Errorf("export: constraint: %w", err)
	}
	sum.Statements++
	if e.reset {
		if _, err := e.client.Run(ctx, Statement{Cypher: cypherReset}); err != nil {
			return sum, fmt.Errorf("export: reset: %w", err)
		}
		sum.Statements++
	}

	// 3) data
	n, err := e.writeBatches(ctx, cypherNodes, nodeRows)
	sum.Statements += n
	if err != nil {
		return sum, fmt.Errorf("export: authors: %w", err)
	}
	sum.Nodes = len(nodeRows)

	n, err = e.writeBatches(ctx, cypherEdges, edgeRows)
	sum.Statements += n
	if err != nil {
		return sum, fmt.Errorf("export: relationships: %w", err)
	}
	sum.Edges = len(edgeRows)

	e.logger.WithFields(logrus.Fields{
		"nodes":      sum.Nodes,
		"edges":      sum.Edges,
		"statements": sum.Statements,
	}).Info("graph exported")

	return sum, nil
}

// writeBatches sends rows in chunks of e.batch and returns how many
// statements were executed.
func (e *Exporter) writeBatches(ctx context.Context, cypher string, rows []map[string]any) (int, error) {
	sent := 0
	for start := 0; start < len(rows); start += e.batch {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		end := start + e.batch
		if end > len(rows) {
			end = len(rows)
		}
		st := Statement{Cypher: cypher, Params: map[string]any{"rows": rows[start:end]}}
		if _, err := e.client.Run(ctx, st); err != nil {
			return sent, err
		}
		sent++
	}

	return sent, nil
}

// AuthorCount returns how many :Author nodes the database holds.
func (e *Exporter) AuthorCount(ctx context.Context) (int64, error) {
	res, err := e.client.Run(ctx, Statement{Mode: ModeRead, Cypher: cypherCount})
	if err != nil {
		return 0, fmt.Errorf("export: count: %w", err)
	}
	if len(res.Rows) == 0 {
		return 0, nil
	}
	switch n := res.Rows[0]["n"].(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("export: count: unexpected value %v", n)
	}
}
