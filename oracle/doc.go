// Package oracle decides graph isomorphism exactly. It is the reference the
// benchmark harness grades gossip fingerprints against, and is never used by
// package gossip itself.
//
// Algorithm
//
//  1. Reject on vertex count, edge count, or connected component sizes
//     (Tarjan SCC over the symmetric graph, from go-moremath).
//  2. Refine colors jointly over both graphs, starting from degrees
//     (1-dimensional Weisfeiler-Leman). Different color histograms reject.
//  3. Backtrack over vertex mappings in BFS order from high-degree vertices,
//     trying only same-colored candidates adjacent to the image of the
//     BFS parent, and checking adjacency against every mapped neighbor.
//
// Worst-case time is exponential. Isomorphic honors ctx and returns
// ctx.Err() once it is done; timeouts are the caller's concern.
package oracle
