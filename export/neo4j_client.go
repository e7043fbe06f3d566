// SPDX-License-Identifier: MIT
//
// File: neo4j_client.go
// Role: Client over the Neo4j Bolt driver.
// Determinism:
//   - Every statement runs as one managed transaction; the driver retries
//     transient failures, so statements must be idempotent (MERGE, not CREATE).

package export

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Options describes how to reach the database.
type Options struct {
	URI      string
	Database string
	Username string
	Password string
	// MaxConnections caps the driver pool; 0 keeps the driver default.
	MaxConnections int
}

type neo4jClient struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jClient opens a driver for opts.URI and pings the server before
// returning. An empty Username means no authentication.
func NewNeo4jClient(ctx context.Context, opts Options) (Client, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}
	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("export: driver for %s: %w", opts.URI, err)
	}
	c := &neo4jClient{driver: driver, database: opts.Database}
	if err := c.Ping(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, err
	}

	return c, nil
}

// Run executes st with writer or reader routing according to st.Mode.
func (c *neo4jClient) Run(ctx context.Context, st Statement) (Result, error) {
	routing := neo4j.ExecuteQueryWithWritersRouting()
	if st.Mode == ModeRead {
		routing = neo4j.ExecuteQueryWithReadersRouting()
	}
	res, err := neo4j.ExecuteQuery(ctx, c.driver, st.Cypher, st.Params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(c.database),
		routing,
	)
	if err != nil {
		return Result{}, err
	}

	out := Result{Rows: make([]Row, 0, len(res.Records))}
	for _, rec := range res.Records {
		out.Rows = append(out.Rows, rec.AsMap())
	}

	return out, nil
}

func (c *neo4jClient) Ping(ctx context.Context) error {
	if err := c.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("export: ping: %w", err)
	}

	return nil
}

func (c *neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}
