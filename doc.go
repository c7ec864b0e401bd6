// Package gossip is a structural graph fingerprint for isomorphism testing.
//
// From every start vertex, gossip is spread round by round; each examined
// edge emits a small event (round, contact kind, counters of both sides and,
// optionally, the number of connected components of the frontier). The sorted
// event log of a run is that vertex's timeline; the sorted multiset of all
// timelines, each prefixed by the vertex degree, is the graph fingerprint.
// Isomorphic graphs always get equal fingerprints. Equal fingerprints are
// strong evidence, not proof: some non-isomorphic pairs collide.
//
// Layout:
//
//	core/       — thread-safe undirected Graph with string IDs
//	adjacency/  — generic adjacency view, adapters (core, gonum, edge lists)
//	gossip/     — engine, fingerprints, comparator, equivalence classes
//	oracle/     — exact isomorphism by backtracking, for checking verdicts
//	builder/    — seeded generators (classic, algebraic, random, CFI, products)
//	bfs/        — level-synchronous BFS and components
//	graphstats/ — size, distances, degree profile, strong regularity
//	graphio/    — edge list, Pajek, DOT and chain readers and writers
//	bench/      — benchmark families, runner, statistics, tables, reports
//	config/     — gossip.toml loading
//	cmd/gossip  — command-line interface
//
// Quick start:
//
//	g1, _ := builder.Build(builder.Rook(4))
//	g2, _ := builder.Build(builder.Shrikhande())
//	same, _ := gossip.MatchGraphs(g1, g2) // false: the frontier shape separates them
package gossip
