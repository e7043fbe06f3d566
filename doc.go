// Package collabgraph builds a weighted co-authorship graph from a
// publication dataset and answers questions about it.
//
// What is in the box?
//
//	A thread-safe, in-memory graph of authors where two authors are linked
//	when they wrote a paper together, weighted by the Jaccard distance of
//	their publication sets:
//		• core/      — graph store, two-phase build (building → finalized), views
//		• dijkstra/  — weighted shortest paths and hub→author paths
//		• bfs/       — hop-limited neighborhoods and their induced subgraphs
//		• dfs/       — connected components
//		• group/     — nearest-seed group numbers, computed in parallel
//		• ingest/    — streaming JSON dataset decoder and graph builder
//		• store/     — bbolt/bolthold cache of finalized graphs
//		• export/    — Neo4j export for external centrality metrics
//		• builder/   — synthetic datasets for benchmarks and demos
//		• engine/    — load-or-build facade over all of the above
//		• cli/, cmd/ — the collabgraph command
//
// Weights:
//
//	w(a,b) = 1 − |P(a) ∩ P(b)| / |P(a) ∪ P(b)|
//
//	where P(x) is the set of publications of author x. Co-authors always
//	share at least one publication, so every weight lies in [0,1).
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEntry(entry)        // repeat for every publication
//	_ = g.AssignWeights()        // freeze the graph
//	path, err := dijkstra.PathBetween(g, hub, author)
//
// Or from the command line:
//
//	collabgraph generate --out data/full_dblp.json
//	collabgraph path 42
//	collabgraph neighborhood 42 --hops 2
//	collabgraph groups --seeds 1,2,3 --out group_numbers.json
package collabgraph
