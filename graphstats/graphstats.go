// Package graphstats summarizes the structure of a core.Graph: size,
// density, connectivity, distances and degree profile. The CLI prints it
// next to every comparison and the benchmark report records it per case.
package graphstats

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gossip/adjacency"
	"github.com/katalvlaran/gossip/bfs"
	"github.com/katalvlaran/gossip/core"
)

// ErrGraphNil is returned for a nil graph.
var ErrGraphNil = errors.New("graphstats: graph is nil")

// Stats describes a graph in its simple-graph view: loops and parallel
// edges are ignored.
type Stats struct {
	Vertices   int     `json:"vertices"`
	Edges      int     `json:"edges"`
	Density    float64 `json:"density"`
	Connected  bool    `json:"connected"`
	Components int     `json:"components"`

	// Diameter and Radius are -1 for disconnected or empty graphs.
	Diameter int `json:"diameter"`
	Radius   int `json:"radius"`

	MinDegree    int     `json:"min_degree"`
	MaxDegree    int     `json:"max_degree"`
	AvgDegree    float64 `json:"avg_degree"`
	DegreeStdDev float64 `json:"degree_stddev"`

	// Regularity is the common degree of a regular graph, -1 otherwise.
	Regular    bool `json:"regular"`
	Regularity int  `json:"regularity"`

	// DegreeSequence is sorted in non-increasing order.
	DegreeSequence []int `json:"degree_sequence"`
}

// Compute gathers Stats for g. Distances need one BFS per vertex, so ctx is
// checked between sources.
//
// Complexity: O(V·(V log V + E)).
func Compute(ctx context.Context, g *core.Graph) (*Stats, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := adjacency.FromCore(g).Normalize()
	vs := g.Vertices()
	n := len(vs)

	s := &Stats{
		Vertices:   n,
		Edges:      adj.EdgeCount(),
		Diameter:   -1,
		Radius:     -1,
		Regularity: -1,
	}
	if n > 1 {
		s.Density = 2 * float64(s.Edges) / float64(n*(n-1))
	}

	degrees := make([]float64, n)
	s.DegreeSequence = make([]int, n)
	for i, v := range vs {
		d := 0
		for _, w := range adj[v] {
			if w != v {
				d++
			}
		}
		s.DegreeSequence[i] = d
		degrees[i] = float64(d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.DegreeSequence)))
	if n > 0 {
		s.MaxDegree = s.DegreeSequence[0]
		s.MinDegree = s.DegreeSequence[n-1]
		s.AvgDegree, s.DegreeStdDev = stat.PopMeanStdDev(degrees, nil)
		if s.MinDegree == s.MaxDegree {
			s.Regular = true
			s.Regularity = s.MaxDegree
		}
	}

	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("graphstats: %w", err)
	}
	s.Components = len(comps)
	s.Connected = len(comps) == 1
	if !s.Connected {
		return s, nil
	}

	s.Radius = n
	for _, v := range vs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := bfs.BFS(g, v, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("graphstats: eccentricity of %q: %w", v, err)
		}
		ecc := res.Eccentricity()
		s.Diameter = max(s.Diameter, ecc)
		s.Radius = min(s.Radius, ecc)
	}

	return s, nil
}

// SRG holds strongly regular parameters (v, k, λ, μ).
type SRG struct {
	V, K, Lambda, Mu int
}

// String renders "srg(v,k,λ,μ)".
func (p SRG) String() string {
	return fmt.Sprintf("srg(%d,%d,%d,%d)", p.V, p.K, p.Lambda, p.Mu)
}

// StronglyRegular reports whether g is strongly regular and, if so, its
// parameters: every vertex has degree k, adjacent pairs share λ neighbors
// and distinct non-adjacent pairs share μ. Complete and empty graphs have
// no non-adjacent (resp. adjacent) pairs; the unused parameter is 0.
//
// Complexity: O(V²·Δ).
func StronglyRegular(g *core.Graph) (SRG, bool) {
	if g == nil || g.VertexCount() == 0 {
		return SRG{}, false
	}
	adj := adjacency.FromCore(g).Normalize()
	vs := g.Vertices()
	nbr := make(map[string]map[string]bool, len(vs))
	for _, v := range vs {
		set := make(map[string]bool, len(adj[v]))
		for _, w := range adj[v] {
			if w != v {
				set[w] = true
			}
		}
		nbr[v] = set
	}

	p := SRG{V: len(vs), K: len(nbr[vs[0]]), Lambda: -1, Mu: -1}
	for _, v := range vs {
		if len(nbr[v]) != p.K {
			return SRG{}, false
		}
	}
	for i, a := range vs {
		for _, b := range vs[i+1:] {
			common := 0
			for w := range nbr[a] {
				if nbr[b][w] {
					common++
				}
			}
			want := &p.Mu
			if nbr[a][b] {
				want = &p.Lambda
			}
			if *want < 0 {
				*want = common
			}
			if *want != common {
				return SRG{}, false
			}
		}
	}
	p.Lambda = max(p.Lambda, 0)
	p.Mu = max(p.Mu, 0)

	return p, true
}
