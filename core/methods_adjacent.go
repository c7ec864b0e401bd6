// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() keeps one entry per edge endpoint, sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
// AI-HINT (file):
//   - NeighborIDs(id) is the simple-graph view (unique, loops included once).
//   - AdjacencyList() is the raw multigraph view (parallel edges repeat).

package core

import "sort"

// NeighborIDs returns the unique IDs adjacent to id, sorted lexicographically.
// A self-loop lists id itself once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr, bucket := range g.adjacency[id] {
		if len(bucket) > 0 {
			out = append(out, nbr)
		}
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns, for every vertex, the endpoint list of its incident
// edges. Every parallel edge contributes one entry; a self-loop contributes id once.
// Isolated vertices map to an empty, non-nil slice.
//
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		list := make([]string, 0, len(g.adjacency[id]))
		for nbr, bucket := range g.adjacency[id] {
			for range bucket {
				list = append(list, nbr)
			}
		}
		sort.Strings(list)
		out[id] = list
	}

	return out
}
