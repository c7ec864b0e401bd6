// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, visit order and the
// layer structure around a start vertex.
//
// What
//
//   - BFS expands whole layers: every vertex at distance d is known before
//     any vertex at distance d+1. Result.Layers mirrors the round structure of
//     a gossip run from the same start vertex (layer d is the frontier of
//     round d when every informed vertex keeps spreading).
//   - Result.Eccentricity gives the start vertex's eccentricity, the basis
//     for diameter and radius in package graphstats.
//   - Components splits a graph into connected components.
//
// Determinism
//
//	Layers are sorted and parents are assigned while scanning the sorted
//	previous layer, so two runs on equal graphs return identical results.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V log V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "0",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnLayer(func(d int, layer []string) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached vertices.
//   - ctx.Err() and wrapped OnLayer errors.
package bfs
