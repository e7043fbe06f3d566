// SPDX-License-Identifier: MIT
// Package: collabgraph/builder
//
// dataset.go — synthetic publication datasets.
//
// Model:
//   - Authors are numbered 1..authors.
//   - Each publication draws a team size in [1, maxTeam] and a lead author
//     uniformly; co-authors come from the window of community ids following
//     the lead (wrapping around), which yields clustered components.
//   - Conferences are assigned uniformly from 1..conferences.
//
// Determinism:
//   - Records depend only on the parameters and the RNG state.

package builder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/ingest"
)

// ErrTooFew indicates a non-positive author or publication count.
var ErrTooFew = errors.New("builder: parameter too small")

// Dataset generates publications records over authors authors.
//
// Errors: ErrTooFew if authors < 1 or publications < 0.
// Complexity: O(publications · maxTeam).
func Dataset(authors, publications int, opts ...Option) ([]ingest.Record, error) {
	if authors < 1 {
		return nil, fmt.Errorf("Dataset: authors=%d < 1: %w", authors, ErrTooFew)
	}
	if publications < 0 {
		return nil, fmt.Errorf("Dataset: publications=%d < 0: %w", publications, ErrTooFew)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	window := cfg.community
	if window > authors {
		window = authors
	}

	recs := make([]ingest.Record, 0, publications)
	for i := 0; i < publications; i++ {
		conf := int64(cfg.rng.Intn(cfg.conferences) + 1)
		pub := int64(i + 1)
		rec := ingest.Record{
			PublicationID:    fmt.Sprintf("synth/c%d/p%d", conf, pub),
			PublicationIntID: pub,
			Title:            fmt.Sprintf("Synthetic paper %d", pub),
			ConferenceID:     fmt.Sprintf("synth/c%d", conf),
			ConferenceIntID:  conf,
		}

		// 1) team: lead plus distinct offsets inside the community window
		team := cfg.rng.Intn(cfg.maxTeam) + 1
		if team > window {
			team = window
		}
		lead := cfg.rng.Intn(authors)
		offsets := cfg.rng.Perm(window)[:team]
		for _, off := range offsets {
			id := int64((lead+off)%authors) + 1
			rec.Authors = append(rec.Authors, ingest.RecordAuthor{Name: cfg.nameFn(id), ID: id})
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// Graph generates a dataset and returns its finalized graph.
func Graph(authors, publications int, opts ...Option) (*core.Graph, error) {
	recs, err := Dataset(authors, publications, opts...)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph()
	for i, r := range recs {
		if err := g.AddEntry(r.Entry()); err != nil {
			return nil, fmt.Errorf("Graph: record %d: %w", i, err)
		}
	}
	if err := g.AssignWeights(); err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}

	return g, nil
}

// WriteJSON writes recs as a dataset file readable by ingest.
func WriteJSON(w io.Writer, recs []ingest.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")

	return enc.Encode(recs)
}

