// SPDX-License-Identifier: MIT
//
// File: client.go
// Role: Statement, Result and the Client contract the Exporter writes through.
// Concurrency:
//   - Implementations must accept calls from one goroutine at a time at least;
//     the Exporter never issues two statements concurrently.

package export

import (
	"context"
	"errors"
)

// ErrMissingURI indicates that no database URI was configured.
var ErrMissingURI = errors.New("export: database URI is required")

// Mode routes a statement to a writer or a reader.
type Mode int

const (
	// ModeWrite statements change the database.
	ModeWrite Mode = iota

	// ModeRead statements only query it.
	ModeRead
)

// String returns "write" or "read".
func (m Mode) String() string {
	if m == ModeRead {
		return "read"
	}

	return "write"
}

// Statement is one Cypher query with its parameters.
type Statement struct {
	Mode   Mode
	Cypher string
	Params map[string]any
}

// Row is one result row keyed by column name.
type Row map[string]any

// Result holds every row a statement returned.
type Result struct {
	Rows []Row
}

// Client executes statements against a graph database.
type Client interface {
	// Run executes st and returns its rows, all read eagerly.
	Run(ctx context.Context, st Statement) (Result, error)
	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
