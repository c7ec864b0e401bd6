package adjacency

import "fmt"

// Indexed is the compiled, dense form of an Adjacency: vertices are numbered
// 0..n-1 and neighbor lists are simple (no loops, no duplicates) and
// symmetric. It satisfies the go-moremath graph.Graph interface.
type Indexed[V comparable] struct {
	// IDs maps an index back to its vertex identifier.
	IDs []V

	// Pos maps a vertex identifier to its index.
	Pos map[V]int

	out   [][]int
	edges int
}

// Compile validates a and builds its Indexed form.
//
// Errors:
//   - ErrMalformed (wrapped) if a neighbor is not a vertex.
//
// Complexity: O(V + E).
func Compile[V comparable](a Adjacency[V]) (*Indexed[V], error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}

	idx := &Indexed[V]{
		IDs: make([]V, 0, len(a)),
		Pos: make(map[V]int, len(a)),
	}
	for v := range a {
		idx.Pos[v] = len(idx.IDs)
		idx.IDs = append(idx.IDs, v)
	}

	sets := make([]map[int]struct{}, len(idx.IDs))
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for v, nbrs := range a {
		u := idx.Pos[v]
		for _, w := range nbrs {
			x := idx.Pos[w]
			if x == u {
				continue
			}
			sets[u][x] = struct{}{}
			sets[x][u] = struct{}{}
		}
	}

	idx.out = make([][]int, len(idx.IDs))
	total := 0
	for u, set := range sets {
		list := make([]int, 0, len(set))
		for x := range set {
			list = append(list, x)
		}
		idx.out[u] = list
		total += len(list)
	}
	idx.edges = total / 2

	return idx, nil
}

// NumNodes returns the number of vertices.
func (x *Indexed[V]) NumNodes() int { return len(x.IDs) }

// Out returns the neighbor indices of node. The slice must not be modified.
func (x *Indexed[V]) Out(node int) []int { return x.out[node] }

// Degree returns the number of distinct non-loop neighbors of node.
func (x *Indexed[V]) Degree(node int) int { return len(x.out[node]) }

// EdgeCount returns the number of distinct undirected non-loop edges.
func (x *Indexed[V]) EdgeCount() int { return x.edges }
