// Package ingest loads the publication dataset into a finalized graph.
//
// The dataset is a JSON array; each element describes one publication with
// its conference and its authors:
//
//	{"id_publication": "conf/x/1", "id_publication_int": 1, "title": "...",
//	 "id_conference": "conf/x/2017", "id_conference_int": 7,
//	 "authors": [{"author": "Jane Doe", "author_id": 42}]}
//
// Records are streamed with a Decoder, so the file is never held in memory
// as a whole. A Builder applies them to a core.Graph and assigns the weights.
//
// Bad records are skipped and counted by default; WithStrict(true) turns the
// first one into a fatal *RecordError.
package ingest
