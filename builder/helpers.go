// Package builder provides internal helper functions used by Constructor
// implementations to emit index-based topologies.
package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gossip/core"
)

// topology is an index-based simple graph awaiting ID assignment.
type topology struct {
	n     int
	edges [][2]int
	seen  map[[2]int]struct{}
}

// newTopology allocates an empty topology on n vertices.
func newTopology(n int) *topology {
	return &topology{n: n, seen: make(map[[2]int]struct{})}
}

// link records the unordered edge {u,v}. Duplicates are ignored, so
// constructors may enumerate an edge from both ends.
func (t *topology) link(u, v int) {
	if u > v {
		u, v = v, u
	}
	key := [2]int{u, v}
	if _, dup := t.seen[key]; dup {
		return
	}
	t.seen[key] = struct{}{}
	t.edges = append(t.edges, key)
}

// apply adds idFn(0..n-1) to g, then every recorded edge in emission order.
// Complexity: O(n + m).
func (t *topology) apply(g *core.Graph, cfg builderConfig, method string) error {
	for i := 0; i < t.n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	for _, e := range t.edges {
		if e[0] == e[1] {
			return fmt.Errorf("%s: self-loop at %d: %w", method, e[0], ErrConstructFailed)
		}
		u, v := cfg.idFn(e[0]), cfg.idFn(e[1])
		if _, err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
		}
	}

	return nil
}

// combinations lists the k-subsets of {0..n-1} in lexicographic order.
func combinations(n, k int) [][]int {
	var out [][]int
	cur := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i <= n-(k-len(cur)); i++ {
			cur = append(cur, i)
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)

	return out
}

// intersectionSize counts common elements of two sorted sets.
func intersectionSize(a, b []int) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return n
}

// isPrime reports whether q is prime (trial division).
func isPrime(q int) bool {
	if q < 2 {
		return false
	}
	for d := 2; d*d <= q; d++ {
		if q%d == 0 {
			return false
		}
	}

	return true
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
