// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: Dataset record layout, record errors and the streaming decoder.

package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/collabgraph/core"
)

// ErrFormat indicates the input is not a JSON array of records. It aborts a
// load in every mode, since no later record can be located.
var ErrFormat = errors.New("ingest: malformed dataset")

// RecordAuthor is one element of a record's author list.
type RecordAuthor struct {
	Name string `json:"author"`
	ID   int64  `json:"author_id"`
}

// Record is one publication entry of the dataset.
type Record struct {
	PublicationID    string         `json:"id_publication"`
	PublicationIntID int64          `json:"id_publication_int"`
	Title            string         `json:"title"`
	ConferenceID     string         `json:"id_conference"`
	ConferenceIntID  int64          `json:"id_conference_int"`
	Authors          []RecordAuthor `json:"authors"`
}

// Entry converts the record to the graph's entry type.
func (r Record) Entry() core.Entry {
	e := core.Entry{
		Publication: core.Publication{StrID: r.PublicationID, IntID: r.PublicationIntID, Title: r.Title},
		Conference:  core.Conference{StrID: r.ConferenceID, IntID: r.ConferenceIntID},
		Authors:     make([]core.Author, 0, len(r.Authors)),
	}
	for _, a := range r.Authors {
		e.Authors = append(e.Authors, core.Author{ID: core.AuthorID(a.ID), Name: a.Name})
	}

	return e
}

// RecordError reports a record that could not be applied. It unwraps to
// core.ErrIngestion.
type RecordError struct {
	// Index is the zero-based position of the record in the dataset.
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("ingest: record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Decoder reads records one at a time from a JSON array.
type Decoder struct {
	dec     *json.Decoder
	started bool
	done    bool
	index   int
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Next returns the next record. It returns io.EOF after the closing bracket,
// a *RecordError for a record whose fields have the wrong JSON types (the
// decoder stays usable), and an error wrapping ErrFormat for broken input.
func (d *Decoder) Next() (Record, error) {
	if d.done {
		return Record{}, io.EOF
	}
	if !d.started {
		tok, err := d.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Record{}, fmt.Errorf("%w: empty input", ErrFormat)
			}
			return Record{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			return Record{}, fmt.Errorf("%w: expected '[' at start, got %v", ErrFormat, tok)
		}
		d.started = true
	}

	if !d.dec.More() {
		if _, err := d.dec.Token(); err != nil {
			return Record{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		d.done = true
		return Record{}, io.EOF
	}

	idx := d.index
	d.index++

	var rec Record
	if err := d.dec.Decode(&rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Record{}, &RecordError{Index: idx, Err: fmt.Errorf("%w: %v", core.ErrIngestion, err)}
		}
		return Record{}, fmt.Errorf("%w: record %d: %v", ErrFormat, idx, err)
	}

	return rec, nil
}

// Index returns how many records have been read so far.
func (d *Decoder) Index() int { return d.index }
