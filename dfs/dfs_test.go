package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/dfs"
)

func build(t *testing.T, groups ...[]core.AuthorID) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, ids := range groups {
		e := core.Entry{Publication: core.Publication{StrID: "p", IntID: int64(i + 1)}}
		for _, id := range ids {
			e.Authors = append(e.Authors, core.Author{ID: id})
		}
		require.NoError(t, g.AddEntry(e))
	}

	return g
}

func TestComponent(t *testing.T) {
	g := build(t, []core.AuthorID{5, 3}, []core.AuthorID{3, 1}, []core.AuthorID{7, 8}, []core.AuthorID{9})

	comp, err := dfs.Component(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.AuthorID{1, 3, 5}, comp)

	comp, err = dfs.Component(g, 9)
	require.NoError(t, err)
	assert.Equal(t, []core.AuthorID{9}, comp)
}

func TestComponents_Partition(t *testing.T) {
	g := build(t, []core.AuthorID{5, 3}, []core.AuthorID{3, 1}, []core.AuthorID{7, 8}, []core.AuthorID{9})

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]core.AuthorID{{1, 3, 5}, {7, 8}, {9}}, comps)

	total := 0
	for _, c := range comps {
		total += len(c)
	}
	assert.Equal(t, g.NodeCount(), total)
}

func TestComponent_Errors(t *testing.T) {
	_, err := dfs.Component(nil, 1)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, []core.AuthorID{1, 2})
	_, err = dfs.Component(g, 42)
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	//nolint:staticcheck // nil context is the case under test
	_, err = dfs.Component(g, 1, dfs.WithContext(nil))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Components(g, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	_, err = dfs.Component(g, 1, dfs.WithOnVisit(func(core.AuthorID) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestComponent_VisitOrderIsAscendingFromRoot(t *testing.T) {
	// star around 1
	g := build(t, []core.AuthorID{1, 4}, []core.AuthorID{1, 2}, []core.AuthorID{1, 3})

	var order []core.AuthorID
	_, err := dfs.Component(g, 1, dfs.WithOnVisit(func(id core.AuthorID) error {
		order = append(order, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []core.AuthorID{1, 2, 3, 4}, order)
}
