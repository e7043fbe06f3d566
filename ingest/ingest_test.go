package ingest_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/ingest"
)

const dataset = `[
 {"id_publication": "conf/a/1", "id_publication_int": 1, "title": "One",
  "id_conference": "conf/a/2017", "id_conference_int": 7,
  "authors": [{"author": "Ada", "author_id": 1}, {"author": "Bob", "author_id": 2}]},
 {"id_publication": "conf/a/2", "id_publication_int": 2, "title": "Two",
  "id_conference": "conf/a/2017", "id_conference_int": 7,
  "authors": [{"author": "Bob", "author_id": 2}, {"author": "Cy", "author_id": 3}]},
 {"id_publication": "conf/b/3", "id_publication_int": 3, "title": "Three",
  "id_conference": "conf/b/2018", "id_conference_int": 8,
  "authors": [{"author": "Bob", "author_id": 2}]}
]`

const withBadRecords = `[
 {"id_publication": "p1", "id_publication_int": 1, "id_conference_int": 7,
  "authors": [{"author": "Ada", "author_id": 1}, {"author": "Bob", "author_id": 2}]},
 {"id_publication": "p2", "id_publication_int": 2, "id_conference_int": 7, "authors": []},
 {"id_publication": "p3", "id_publication_int": 3, "id_conference_int": 7, "authors": "nobody"},
 {"id_publication": "p4", "id_publication_int": 4, "id_conference_int": 7,
  "authors": [{"author": "Ghost", "author_id": 0}, {"author": "Ada", "author_id": 1}]},
 {"id_publication": "p5", "id_publication_int": 5, "id_conference_int": 7,
  "authors": [{"author": "Ada", "author_id": 1}, {"author": "Cy", "author_id": 3}]}
]`

func TestDecoder_Records(t *testing.T) {
	dec := ingest.NewDecoder(strings.NewReader(dataset))

	var recs []ingest.Record
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	require.Len(t, recs, 3)
	assert.Equal(t, "conf/a/2", recs[1].PublicationID)
	assert.Equal(t, int64(8), recs[2].ConferenceIntID)

	e := recs[0].Entry()
	assert.Equal(t, []core.Author{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Bob"}}, e.Authors)
	assert.Equal(t, "One", e.Publication.Title)

	_, err := dec.Next()
	assert.ErrorIs(t, err, io.EOF, "EOF is sticky")
}

func TestDecoder_Format(t *testing.T) {
	for name, in := range map[string]string{
		"empty":     "",
		"object":    `{"a": 1}`,
		"truncated": `[{"id_publication": "p"`,
		"garbage":   `[{"id_publication": "p"} x]`,
	} {
		t.Run(name, func(t *testing.T) {
			dec := ingest.NewDecoder(strings.NewReader(in))
			var err error
			for err == nil {
				_, err = dec.Next()
			}
			assert.ErrorIs(t, err, ingest.ErrFormat)
		})
	}
}

func TestBuild(t *testing.T) {
	g, stats, err := ingest.NewBuilder().Build(context.Background(), strings.NewReader(dataset))
	require.NoError(t, err)

	assert.Equal(t, ingest.Stats{Records: 3, Skipped: 0, Nodes: 3, Edges: 2}, stats)
	assert.True(t, g.Finalized())

	// Bob has {1,2,3}; Ada {1}; Cy {2}
	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1-1.0/3, w, 1e-9)

	n, err := g.Node(2)
	require.NoError(t, err)
	assert.Len(t, n.Publications, 3)
	assert.Len(t, n.Conferences, 2)
}

func TestBuild_EmptyArray(t *testing.T) {
	g, stats, err := ingest.NewBuilder().Build(context.Background(), strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.True(t, g.Finalized())
	assert.Equal(t, ingest.Stats{}, stats)
}

func TestBuild_LenientSkipsBadRecords(t *testing.T) {
	g, stats, err := ingest.NewBuilder().Build(context.Background(), strings.NewReader(withBadRecords))
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Records)
	assert.Equal(t, 3, stats.Skipped)
	assert.Equal(t, []core.AuthorID{1, 2, 3}, g.Nodes())
	assert.False(t, g.HasNode(0))

	// record p4 was rejected as a whole: Ada has no publication 4
	ada, err := g.Node(1)
	require.NoError(t, err)
	_, has4 := ada.Publications[4]
	assert.False(t, has4)
}

// noIntIDs has two distinct papers that carry only string publication ids.
const noIntIDs = `[
 {"id_publication": "conf/a/1", "id_conference_int": 7,
  "authors": [{"author": "Ada", "author_id": 1}, {"author": "Bob", "author_id": 2}]},
 {"id_publication": "conf/a/2", "id_conference_int": 7,
  "authors": [{"author": "Ada", "author_id": 1}, {"author": "Cy", "author_id": 3}]},
 {"id_publication": "conf/a/3", "id_publication_int": 3, "id_conference_int": 7,
  "authors": [{"author": "Bob", "author_id": 2}, {"author": "Cy", "author_id": 3}]}
]`

func TestBuild_MissingPublicationIntID(t *testing.T) {
	g, stats, err := ingest.NewBuilder().Build(context.Background(), strings.NewReader(noIntIDs))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Records)
	assert.Equal(t, 2, stats.Skipped)
	assert.False(t, g.HasNode(1))
	w, err := g.Weight(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)

	_, _, err = ingest.NewBuilder(ingest.WithStrict(true)).
		Build(context.Background(), strings.NewReader(noIntIDs))
	var recErr *ingest.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 0, recErr.Index)
	assert.ErrorIs(t, err, core.ErrIngestion)
}

func TestBuild_StrictStopsAtFirstBadRecord(t *testing.T) {
	_, _, err := ingest.NewBuilder(ingest.WithStrict(true)).
		Build(context.Background(), strings.NewReader(withBadRecords))

	var recErr *ingest.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 1, recErr.Index)
	assert.ErrorIs(t, err, core.ErrIngestion)
}

func TestBuild_StrictTypeError(t *testing.T) {
	in := `[{"id_publication": "p", "id_publication_int": "one", "authors": [{"author_id": 1}]}]`
	_, _, err := ingest.NewBuilder(ingest.WithStrict(true)).Build(context.Background(), strings.NewReader(in))

	var recErr *ingest.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 0, recErr.Index)
	assert.ErrorIs(t, err, core.ErrIngestion)
}

func TestBuild_FormatErrorIsFatalWhenLenient(t *testing.T) {
	_, _, err := ingest.NewBuilder().Build(context.Background(), strings.NewReader(`{"not": "an array"}`))
	assert.ErrorIs(t, err, ingest.ErrFormat)
}

func TestBuild_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ingest.NewBuilder().Build(ctx, strings.NewReader(dataset))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o600))

	g, stats, err := ingest.NewBuilder().BuildFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Nodes)
	assert.Equal(t, 3, g.NodeCount())

	_, _, err = ingest.NewBuilder().BuildFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
