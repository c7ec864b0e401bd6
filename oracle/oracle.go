package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gossip/adjacency"
	"github.com/katalvlaran/gossip/core"
)

var (
	// ErrMalformedAdjacency is returned when a neighbor list references a missing vertex.
	ErrMalformedAdjacency = errors.New("oracle: malformed adjacency")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("oracle: graph is nil")
)

// checkEvery is the number of search nodes expanded between ctx checks.
const checkEvery = 1 << 10

// Isomorphic reports whether g1 and g2 are isomorphic.
func Isomorphic[V comparable](ctx context.Context, g1, g2 adjacency.Adjacency[V]) (bool, error) {
	m, err := FindMapping(ctx, g1, g2)

	return m != nil, err
}

// IsomorphicGraphs adapts two core graphs and calls Isomorphic.
func IsomorphicGraphs(ctx context.Context, g1, g2 *core.Graph) (bool, error) {
	if g1 == nil || g2 == nil {
		return false, fmt.Errorf("IsomorphicGraphs: %w", ErrGraphNil)
	}

	return Isomorphic(ctx, adjacency.FromCore(g1), adjacency.FromCore(g2))
}

// FindMapping returns an isomorphism from g1 to g2, or nil if none exists.
// Self-loops and parallel edges are ignored.
func FindMapping[V comparable](ctx context.Context, g1, g2 adjacency.Adjacency[V]) (map[V]V, error) {
	idx1, err := adjacency.Compile(g1)
	if err != nil {
		return nil, fmt.Errorf("FindMapping: %w: %w", ErrMalformedAdjacency, err)
	}
	idx2, err := adjacency.Compile(g2)
	if err != nil {
		return nil, fmt.Errorf("FindMapping: %w: %w", ErrMalformedAdjacency, err)
	}

	if idx1.NumNodes() != idx2.NumNodes() || idx1.EdgeCount() != idx2.EdgeCount() {
		return nil, nil
	}
	if !equalInts(componentSizes(idx1), componentSizes(idx2)) {
		return nil, nil
	}
	c1, c2, ok := refine(idx1, idx2)
	if !ok {
		return nil, nil
	}

	s := newSearch(ctx, idx1, idx2, c1, c2)
	found, err := s.match(0)
	if err != nil || !found {
		return nil, err
	}

	out := make(map[V]V, len(s.m))
	for a, b := range s.m {
		out[idx1.IDs[a]] = idx2.IDs[b]
	}

	return out, nil
}

// search holds the backtracking state. m maps g1 indices to g2 indices.
type search struct {
	ctx    context.Context
	g1, g2 indexed
	c1, c2 []int

	order  []int // g1 vertices in visiting order
	parent []int // BFS parent of order[i] in g1, or -1
	has2   []map[int]struct{}

	m     []int
	used  []bool
	nodes int
}

// indexed is the view both compiled graphs share.
type indexed interface {
	NumNodes() int
	Out(node int) []int
}

func newSearch(ctx context.Context, g1, g2 indexed, c1, c2 []int) *search {
	n := g1.NumNodes()
	s := &search{
		ctx: ctx, g1: g1, g2: g2, c1: c1, c2: c2,
		has2: make([]map[int]struct{}, n),
		m:    make([]int, n),
		used: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		s.m[v] = -1
		set := make(map[int]struct{}, len(g2.Out(v)))
		for _, x := range g2.Out(v) {
			set[x] = struct{}{}
		}
		s.has2[v] = set
	}
	s.order, s.parent = visitOrder(g1, c1)

	return s
}

// match extends the mapping from position i of the visiting order.
func (s *search) match(i int) (bool, error) {
	if i == len(s.order) {
		return true, nil
	}
	if s.nodes%checkEvery == 0 {
		if err := s.ctx.Err(); err != nil {
			return false, err
		}
	}
	s.nodes++

	a := s.order[i]
	candidates := s.candidates(i)
	for _, b := range candidates {
		if s.used[b] || s.c1[a] != s.c2[b] || !s.consistent(a, b) {
			continue
		}
		s.m[a], s.used[b] = b, true
		ok, err := s.match(i + 1)
		if err != nil || ok {
			return ok, err
		}
		s.m[a], s.used[b] = -1, false
	}

	return false, nil
}

// candidates returns the g2 vertices worth trying for order[i]: the
// neighbors of the parent's image, or every vertex for a component root.
func (s *search) candidates(i int) []int {
	if p := s.parent[i]; p >= 0 {
		return s.g2.Out(s.m[p])
	}
	all := make([]int, s.g2.NumNodes())
	for v := range all {
		all[v] = v
	}

	return all
}

// consistent checks that mapping a to b preserves adjacency with every
// already-mapped vertex. Equal colors imply equal degrees, so counting the
// mapped neighbors on both sides covers non-edges too.
func (s *search) consistent(a, b int) bool {
	mapped1 := 0
	for _, x := range s.g1.Out(a) {
		y := s.m[x]
		if y < 0 {
			continue
		}
		if _, ok := s.has2[b][y]; !ok {
			return false
		}
		mapped1++
	}

	mapped2 := 0
	for _, y := range s.g2.Out(b) {
		if s.used[y] {
			mapped2++
		}
	}

	return mapped1 == mapped2
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
