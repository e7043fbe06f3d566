// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collabgraph/core"
)

// entry builds an Entry for publication pub at conference conf written by ids.
// Author names are derived from ids ("A1", "A2", ...).
func entry(pub, conf int64, ids ...core.AuthorID) core.Entry {
	authors := make([]core.Author, 0, len(ids))
	for _, id := range ids {
		authors = append(authors, core.Author{ID: id, Name: nameOf(id)})
	}

	return core.Entry{
		Publication: core.Publication{
			StrID: "pub/" + strconv.FormatInt(pub, 10),
			IntID: pub,
			Title: "Paper " + strconv.FormatInt(pub, 10),
		},
		Conference: core.Conference{StrID: "conf/" + strconv.FormatInt(conf, 10), IntID: conf},
		Authors:    authors,
	}
}

func nameOf(id core.AuthorID) string { return "A" + strconv.FormatInt(int64(id), 10) }

// buildGraph adds entries and assigns weights, failing the test on any error.
func buildGraph(t *testing.T, entries ...core.Entry) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range entries {
		require.NoError(t, g.AddEntry(e))
	}
	require.NoError(t, g.AssignWeights())

	return g
}
