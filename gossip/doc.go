// Package gossip computes structural graph fingerprints by simulating rumor
// spreading ("gossip") from every vertex.
//
// What
//
//   - Run(adj, start) simulates discrete rounds from one start vertex. Each
//     round the vertices that learned the gossip last round (the frontier)
//     contact their neighbors over edges not yet examined. Every contact
//     becomes one Event of (round, tag, countA, countB[, groups]); the sorted
//     events form the vertex Timeline.
//   - Fingerprint(adj) runs every vertex and sorts the results into a
//     GraphFingerprint.
//   - Matches(g1, g2) compares two fingerprints, short-circuiting on
//     different vertex or edge counts.
//   - Classes(adj) groups vertices that share a fingerprint.
//   - Trace(adj, start) exposes per-round statistics for diagnostics.
//
// Variants
//
//	SentinelFrontierShape (default) folds the number of connected components
//	of each round's frontier, joined by that round's intra-frontier contacts,
//	into every event. SentinelOff emits four-field events (Groups == 0).
//
//	CounterHear (default) records dynamic hear counts: the receiving side of
//	a contact gains one hear, and the initiating side gains one too when the
//	receiver already spreads. CounterDegree records static degrees instead.
//
// Guarantees
//
//   - Isomorphic graphs always match, under every variant.
//   - Results do not depend on neighbor order or vertex labels.
//   - Matching graphs may still be non-isomorphic: circulant pairs such as
//     C13(1,3,4) and C13(1,3,6) collide under CounterDegree, and
//     C12(1,2,4) and C12(1,4,5) collide under the defaults. Use package
//     oracle when a definite answer is needed.
//
// Input tolerance
//
//	Self-loops are ignored, parallel edges are examined once, and one-sided
//	neighbor entries are read as undirected edges. A neighbor that is not a
//	vertex yields ErrMalformedAdjacency.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Run:         O(E log E) (every edge examined once, then one sort)
//   - Fingerprint: O(V·E log E) time, O(V·E) memory for all timelines
//
// Concurrency
//
//	Per-vertex runs share no mutable state. WithWorkers(n) spreads them over
//	an errgroup with at most n goroutines; WithWorkers(0) uses GOMAXPROCS.
//
// Usage
//
//	ok, err := gossip.Matches(a1, a2,
//	    gossip.WithSentinel(gossip.SentinelFrontierShape),
//	    gossip.WithWorkers(0),
//	)
package gossip
