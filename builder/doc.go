// Package builder generates synthetic publication datasets.
//
// The generator produces the same records the ingest package reads, so a
// synthetic dataset exercises the full pipeline: decoding, graph building,
// weighting, caching and queries. It backs the benchmarks and the
// "generate" command, which lets the tool run without the real dataset.
//
//	recs, err := builder.Dataset(1000, 5000, builder.WithSeed(42))
//	g, err := builder.Graph(1000, 5000, builder.WithMaxTeam(6))
//
// Option constructors panic on meaningless values; Dataset and Graph return
// ErrTooFew for bad counts and never panic.
package builder
