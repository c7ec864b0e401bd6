// Package bfs provides level-synchronous breadth-first search over a
// core.Graph: whole layers are expanded at once, so every vertex at distance
// d is known before any vertex at distance d+1 is visited.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gossip/core"
)

// BFS runs breadth-first search on g from startID.
// Within a layer vertices are sorted, and each next-layer vertex records the
// smallest-ID parent that reached it, so results are fully deterministic.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ctx.Err() on cancellation, or a wrapped OnLayer error.
//
// Complexity: O(V log V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	res := &Result{
		Depth:  map[string]int{startID: 0},
		Parent: make(map[string]string),
	}
	layer := []string{startID}
	for depth := 0; len(layer) > 0; depth++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		res.Layers = append(res.Layers, layer)
		res.Order = append(res.Order, layer...)
		if err := o.OnLayer(depth, layer); err != nil {
			return res, fmt.Errorf("bfs: OnLayer error at depth %d: %w", depth, err)
		}
		if o.MaxDepth > 0 && depth == o.MaxDepth {
			break
		}

		next, err := expand(g, layer, depth+1, res)
		if err != nil {
			return res, err
		}
		layer = next
	}

	return res, nil
}

// expand discovers the unvisited neighbors of layer, assigning them depth.
func expand(g *core.Graph, layer []string, depth int, res *Result) ([]string, error) {
	var next []string
	for _, u := range layer {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", u, err)
		}
		for _, w := range nbrs {
			if _, seen := res.Depth[w]; seen {
				continue
			}
			res.Depth[w] = depth
			res.Parent[w] = u
			next = append(next, w)
		}
	}
	sort.Strings(next)

	return next, nil
}

// Components partitions g into connected components. Each component is
// sorted; components are ordered by their smallest vertex ID.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var comps [][]string
	seen := make(map[string]bool)
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		sort.Strings(comp)
		for _, u := range comp {
			seen[u] = true
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
