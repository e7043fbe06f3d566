// Package dijkstra_test validates shortest-path distances, early exit,
// path reconstruction and error handling.
package dijkstra_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/dijkstra"
)

const eps = 1e-9

// wedge is a test edge with an explicit weight.
type wedge struct {
	a, b core.AuthorID
	w    float64
}

// weighted builds a finalized graph over nodes with the given weighted edges.
func weighted(t *testing.T, nodes []core.AuthorID, edges ...wedge) *core.Graph {
	t.Helper()
	s := core.Snapshot{Phase: core.PhaseFinalized}
	for _, id := range nodes {
		s.Nodes = append(s.Nodes, core.Node{Author: core.Author{ID: id, Name: "N" + strconv.FormatInt(int64(id), 10)}})
	}
	for _, e := range edges {
		s.Edges = append(s.Edges, core.Edge{From: e.a, To: e.b, Weight: e.w, Weighted: true})
	}
	g, err := core.FromSnapshot(s)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_UnknownNodes(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2}, wedge{1, 2, 0.5})

	_, err := dijkstra.ShortestPath(g, 99)
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = dijkstra.ShortestPath(g, 1, dijkstra.WithTarget(99))
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = dijkstra.PathBetween(g, 99, 1)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = dijkstra.PathBetween(g, 1, 99)
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	res, err := dijkstra.ShortestPath(g, 1)
	require.NoError(t, err)
	_, err = res.PathTo(99)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestShortestPath_BuildingGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEntry(core.Entry{
		Publication: core.Publication{StrID: "p", IntID: 1},
		Authors:     []core.Author{{ID: 1}, {ID: 2}},
	}))

	_, err := dijkstra.ShortestPath(g, 1)
	assert.ErrorIs(t, err, core.ErrPrematureWeight)
}

func TestShortestPath_BadMaxDistance(t *testing.T) {
	g := weighted(t, []core.AuthorID{1})

	_, err := dijkstra.ShortestPath(g, 1, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	_, err = dijkstra.ShortestPath(g, 1, dijkstra.WithMaxDistance(math.NaN()))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestShortestPath_ThreeNodeChain(t *testing.T) {
	// A(1)–B(2) 0.4, B–C(3) 0.5, no A–C edge
	g := weighted(t, []core.AuthorID{1, 2, 3}, wedge{1, 2, 0.4}, wedge{2, 3, 0.5})

	res, err := dijkstra.ShortestPath(g, 1, dijkstra.WithTarget(3))
	require.NoError(t, err)

	assert.InDelta(t, 0.9, res.Dist[3], eps)
	assert.Equal(t, core.AuthorID(2), res.Prev[3])
	assert.Equal(t, core.AuthorID(1), res.Prev[2])
	_, hasSource := res.Prev[1]
	assert.False(t, hasSource, "source must have no predecessor")
	assert.False(t, res.Complete)
}

func TestShortestPath_IndirectBeatsDirect(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2, 3},
		wedge{1, 2, 0.2}, wedge{2, 3, 0.2}, wedge{1, 3, 0.9})

	res, err := dijkstra.ShortestPath(g, 1)
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, 0.0, res.Dist[1])
	assert.InDelta(t, 0.2, res.Dist[2], eps)
	assert.InDelta(t, 0.4, res.Dist[3], eps)
	assert.Equal(t, core.AuthorID(2), res.Prev[3])
}

func TestShortestPath_UnreachedIsInfinite(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2, 3, 4}, wedge{1, 2, 0.5}, wedge{3, 4, 0.5})

	res, err := dijkstra.ShortestPath(g, 1)
	require.NoError(t, err)

	assert.True(t, math.IsInf(res.Dist[3], 1))
	assert.True(t, math.IsInf(res.Dist[4], 1))
	_, ok := res.Prev[3]
	assert.False(t, ok)

	d, reached := res.Distance(4)
	assert.False(t, reached)
	assert.True(t, math.IsInf(d, 1))
	d, reached = res.Distance(2)
	assert.True(t, reached)
	assert.InDelta(t, 0.5, d, eps)

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2, 3}, wedge{1, 2, 0}, wedge{2, 3, 0})

	res, err := dijkstra.ShortestPath(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist[1])
	assert.Equal(t, core.AuthorID(2), res.Prev[1])
}

func TestShortestPath_SourceDistanceIsZero(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2, 3},
		wedge{1, 2, 0.3}, wedge{2, 3, 0.3}, wedge{1, 3, 0.1})

	for _, s := range g.Nodes() {
		res, err := dijkstra.ShortestPath(g, s)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Dist[s], "source %d", s)
	}
}

func TestShortestPath_TieBreakIsDeterministic(t *testing.T) {
	// square: 1–2–4 and 1–3–4, all 0.5
	g := weighted(t, []core.AuthorID{1, 2, 3, 4},
		wedge{1, 2, 0.5}, wedge{1, 3, 0.5}, wedge{2, 4, 0.5}, wedge{3, 4, 0.5})

	for i := 0; i < 10; i++ {
		res, err := dijkstra.ShortestPath(g, 1)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, res.Dist[4], eps)
		assert.Equal(t, core.AuthorID(2), res.Prev[4])
	}
}

// ------------------------------------------------------------------------
// 3. Early exit and distance cap
// ------------------------------------------------------------------------

func TestShortestPath_EarlyExitIsPartial(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2, 3, 4},
		wedge{1, 2, 0.1}, wedge{2, 3, 0.1}, wedge{3, 4, 0.1})

	res, err := dijkstra.ShortestPath(g, 1, dijkstra.WithTarget(2))
	require.NoError(t, err)

	assert.False(t, res.Complete)
	assert.InDelta(t, 0.1, res.Dist[2], eps)
	assert.True(t, math.IsInf(res.Dist[3], 1), "node beyond the target must not be relaxed")
	assert.True(t, math.IsInf(res.Dist[4], 1))

	full, err := dijkstra.ShortestPath(g, 1)
	require.NoError(t, err)
	assert.True(t, full.Complete)
	assert.InDelta(t, 0.3, full.Dist[4], eps)
}

func TestShortestPath_TargetIsSource(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2}, wedge{1, 2, 0.5})

	path, err := dijkstra.PathBetween(g, 1, 1)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, core.AuthorID(1), path[0].ID)
	assert.Equal(t, 0.0, path[0].Distance)
}

func TestShortestPath_MaxDistance(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2, 3}, wedge{1, 2, 0.5}, wedge{2, 3, 0.5})

	res, err := dijkstra.ShortestPath(g, 1, dijkstra.WithMaxDistance(0.6))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Dist[2], eps)
	assert.True(t, math.IsInf(res.Dist[3], 1))
}

// ------------------------------------------------------------------------
// 4. Path reconstruction
// ------------------------------------------------------------------------

func TestPathBetween_HubToTarget(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2, 3}, wedge{1, 2, 0.4}, wedge{2, 3, 0.5})

	path, err := dijkstra.PathBetween(g, 1, 3)
	require.NoError(t, err)
	require.Len(t, path, 3)

	assert.Equal(t, []core.AuthorID{1, 2, 3}, []core.AuthorID{path[0].ID, path[1].ID, path[2].ID})
	assert.Equal(t, "N1", path[0].Name)
	assert.Equal(t, 0.0, path[0].Distance)
	assert.InDelta(t, 0.4, path[1].Distance, eps)
	assert.InDelta(t, 0.9, path[2].Distance, eps)
}

func TestPathBetween_Disconnected(t *testing.T) {
	g := weighted(t, []core.AuthorID{1, 2, 3}, wedge{1, 2, 0.4})

	_, err := dijkstra.PathBetween(g, 1, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.NotErrorIs(t, err, core.ErrUnknownNode)
}

func TestPathTo_SumOfWeightsEqualsDistance(t *testing.T) {
	g := core.NewGraph()
	entries := [][]core.AuthorID{
		{1, 2, 3}, {2, 4}, {3, 4, 5}, {5, 6}, {1, 6, 7}, {7, 8}, {4, 8}, {2, 3}, {6, 9}, {9, 10, 1},
	}
	for i, authors := range entries {
		e := core.Entry{Publication: core.Publication{StrID: "p", IntID: int64(i + 1)}}
		for _, id := range authors {
			e.Authors = append(e.Authors, core.Author{ID: id})
		}
		require.NoError(t, g.AddEntry(e))
	}
	require.NoError(t, g.AssignWeights())

	res, err := dijkstra.ShortestPath(g, 1)
	require.NoError(t, err)

	for _, target := range g.Nodes() {
		path, err := res.PathTo(target)
		require.NoError(t, err)
		require.Equal(t, core.AuthorID(1), path[0].ID)
		require.Equal(t, target, path[len(path)-1].ID)

		sum := 0.0
		for i := 1; i < len(path); i++ {
			w, err := g.Weight(path[i-1].ID, path[i].ID)
			require.NoError(t, err)
			sum += w
			assert.InDelta(t, sum, path[i].Distance, eps)
		}
		assert.InDelta(t, res.Dist[target], sum, eps, "target %d", target)
	}
}
