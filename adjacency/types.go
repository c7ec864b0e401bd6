package adjacency

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates a neighbor list references a vertex that is not a key.
var ErrMalformed = errors.New("adjacency: neighbor is not a vertex")

// Adjacency maps every vertex to the sequence of its neighbors.
// The order of a neighbor sequence carries no meaning.
type Adjacency[V comparable] map[V][]V

// Validate reports the first neighbor that is not itself a vertex.
// Complexity: O(V + E).
func (a Adjacency[V]) Validate() error {
	for v, nbrs := range a {
		for _, w := range nbrs {
			if _, ok := a[w]; !ok {
				return fmt.Errorf("adjacency: %v -> %v: %w", v, w, ErrMalformed)
			}
		}
	}

	return nil
}

// VertexCount returns |V|.
func (a Adjacency[V]) VertexCount() int { return len(a) }

// EdgeCount returns the number of distinct unordered non-loop pairs in the
// symmetric closure of a. Neighbors that are not vertices are ignored.
// Complexity: O(V + E).
func (a Adjacency[V]) EdgeCount() int {
	seen := make(map[[2]V]struct{})
	for v, nbrs := range a {
		for _, w := range nbrs {
			if v == w {
				continue
			}
			if _, ok := a[w]; !ok {
				continue
			}
			if _, dup := seen[[2]V{w, v}]; dup {
				continue
			}
			seen[[2]V{v, w}] = struct{}{}
		}
	}

	return len(seen)
}

// Normalize returns a simple, symmetric copy of a: self-loops dropped,
// duplicate neighbors removed, every edge listed from both ends.
// Neighbors that are not vertices are dropped.
func (a Adjacency[V]) Normalize() Adjacency[V] {
	sets := make(map[V]map[V]struct{}, len(a))
	for v := range a {
		sets[v] = make(map[V]struct{})
	}
	for v, nbrs := range a {
		for _, w := range nbrs {
			if v == w {
				continue
			}
			if _, ok := sets[w]; !ok {
				continue
			}
			sets[v][w] = struct{}{}
			sets[w][v] = struct{}{}
		}
	}

	out := make(Adjacency[V], len(a))
	for v, set := range sets {
		list := make([]V, 0, len(set))
		for w := range set {
			list = append(list, w)
		}
		out[v] = list
	}

	return out
}
