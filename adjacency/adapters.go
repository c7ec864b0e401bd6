package adjacency

import (
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/gossip/core"
)

// FromCore adapts a core.Graph. Every edge contributes its endpoints to both
// lists, so parallel edges repeat and a self-loop lists its vertex once.
// Isolated vertices map to empty lists.
func FromCore(g *core.Graph) Adjacency[string] {
	return Adjacency[string](g.AdjacencyList())
}

// FromGonum adapts an undirected gonum graph, keyed by node ID.
func FromGonum(g graph.Undirected) Adjacency[int64] {
	nodes := graph.NodesOf(g.Nodes())
	out := make(Adjacency[int64], len(nodes))
	for _, n := range nodes {
		id := n.ID()
		nbrs := graph.NodesOf(g.From(id))
		list := make([]int64, 0, len(nbrs))
		for _, m := range nbrs {
			list = append(list, m.ID())
		}
		out[id] = list
	}

	return out
}

// FromEdges builds a symmetric model from an explicit edge list. Vertices
// named only by edges are added; vertices lists isolated ones.
func FromEdges[V comparable](vertices []V, edges [][2]V) Adjacency[V] {
	out := make(Adjacency[V], len(vertices))
	for _, v := range vertices {
		if _, ok := out[v]; !ok {
			out[v] = []V{}
		}
	}
	for _, e := range edges {
		u, w := e[0], e[1]
		out[u] = append(out[u], w)
		if u != w {
			out[w] = append(out[w], u)
		}
	}

	return out
}

// Permute relabels every vertex v as perm[v]. Vertices missing from perm keep
// their label; perm must be injective on the vertex set.
func Permute[V comparable](a Adjacency[V], perm map[V]V) Adjacency[V] {
	label := func(v V) V {
		if p, ok := perm[v]; ok {
			return p
		}
		return v
	}

	out := make(Adjacency[V], len(a))
	for v, nbrs := range a {
		list := make([]V, len(nbrs))
		for i, w := range nbrs {
			list[i] = label(w)
		}
		out[label(v)] = list
	}

	return out
}
