// Package export writes the co-authorship graph to a Neo4j database.
//
// Centrality measures (degree, closeness, betweenness, PageRank) are left to
// the database's graph algorithms; this package only ships the data. Each
// author becomes an (:Author {id, name}) node and each edge a
// [:COAUTHORED {weight}] relationship carrying the Jaccard distance.
//
// The Exporter only needs a core.WeightedView, so any finalized graph or
// subgraph can be exported. Client abstracts the driver: NewNeo4jClient
// talks Bolt, Recorder logs statements for tests and dry runs.
package export
