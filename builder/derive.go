// SPDX-License-Identifier: MIT
// Package: gossip/builder
//
// derive.go — graphs derived from existing graphs: CFI gadget pairs, the
// Cartesian product, line graphs, complements, random relabelings, vertex
// deletion and degree-preserving edge switches.
//
// Contract:
//   • Inputs are read, never mutated; outputs are fresh graphs.
//   • Complement, DeleteVertex and SwitchEdges keep g's loop/multi-edge
//     configuration; all others return simple graphs.
//   • Loops and parallel edges of the input are ignored.
//   • Output vertex/edge insertion follows sorted input order ⇒ deterministic.

package builder

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/gossip/core"
)

const (
	methodCFIPair          = "CFIPair"
	methodCartesianProduct = "CartesianProduct"
	methodLineGraph        = "LineGraph"
	methodComplement       = "Complement"
	methodRelabel          = "Relabel"
	methodDeleteVertex     = "DeleteVertex"
	methodSwitchEdges      = "SwitchEdges"

	cfiGadgetSize = 3
)

// simpleEdges returns the distinct non-loop edges of g as sorted pairs
// (u < v), in lexicographic order.
func simpleEdges(g *core.Graph) [][2]string {
	seen := make(map[[2]string]struct{})
	var out [][2]string
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		key := [2]string{u, v}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// addSimpleEdge adds u–v unless it is a loop or already present.
func addSimpleEdge(g *core.Graph, u, v string) error {
	if u == v || g.HasEdge(u, v) {
		return nil
	}
	_, err := g.AddEdge(u, v)
	return err
}

// CFIPair builds the two gadget graphs of the Cai–Fürer–Immerman style
// construction over base. Every base vertex v becomes a claw: a center "v_c"
// joined to "v_0", "v_1", "v_2". Every base edge u–v joins u_i to v_i in the
// first graph; in the second, edges listed in flip join u_i to v_{(i+1)%3}.
// Flip entries match either orientation.
func CFIPair(base *core.Graph, flip [][2]string) (*core.Graph, *core.Graph, error) {
	if base == nil {
		return nil, nil, fmt.Errorf("%s: nil base graph: %w", methodCFIPair, ErrConstructFailed)
	}
	flipped := make(map[[2]string]struct{}, len(flip))
	for _, e := range flip {
		if !base.HasEdge(e[0], e[1]) {
			return nil, nil, fmt.Errorf("%s: flip %s-%s is not a base edge: %w", methodCFIPair, e[0], e[1], ErrInvalidParameter)
		}
		u, v := e[0], e[1]
		if u > v {
			u, v = v, u
		}
		flipped[[2]string{u, v}] = struct{}{}
	}

	build := func(twist bool) (*core.Graph, error) {
		g := core.NewGraph()
		for _, v := range base.Vertices() {
			center := v + "_c"
			for i := 0; i < cfiGadgetSize; i++ {
				if err := addSimpleEdge(g, center, fmt.Sprintf("%s_%d", v, i)); err != nil {
					return nil, err
				}
			}
		}
		for _, e := range simpleEdges(base) {
			_, isFlip := flipped[e]
			shift := 0
			if twist && isFlip {
				shift = 1
			}
			for i := 0; i < cfiGadgetSize; i++ {
				a := fmt.Sprintf("%s_%d", e[0], i)
				b := fmt.Sprintf("%s_%d", e[1], (i+shift)%cfiGadgetSize)
				if err := addSimpleEdge(g, a, b); err != nil {
					return nil, err
				}
			}
		}
		return g, nil
	}

	g1, err := build(false)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodCFIPair, err)
	}
	g2, err := build(true)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodCFIPair, err)
	}

	return g1, g2, nil
}

// RandomFlips picks half of base's edges (rounded down) uniformly at random,
// the default flip set of a CFI pair.
func RandomFlips(base *core.Graph, rng *rand.Rand) ([][2]string, error) {
	if base == nil {
		return nil, fmt.Errorf("%s: nil base graph: %w", methodCFIPair, ErrConstructFailed)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodCFIPair, ErrNeedRandSource)
	}
	edges := simpleEdges(base)
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	return edges[:len(edges)/2], nil
}

// CartesianProduct returns a □ b: vertex "x:y" for x in a and y in b;
// (x,y) ~ (x',y) when x ~ x' in a, and (x,y) ~ (x,y') when y ~ y' in b.
func CartesianProduct(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: nil factor: %w", methodCartesianProduct, ErrConstructFailed)
	}
	av, bv := a.Vertices(), b.Vertices()
	ae, be := simpleEdges(a), simpleEdges(b)
	id := func(x, y string) string { return x + ":" + y }

	g := core.NewGraph()
	for _, x := range av {
		for _, y := range bv {
			if err := g.AddVertex(id(x, y)); err != nil {
				return nil, fmt.Errorf("%s: %w", methodCartesianProduct, err)
			}
		}
	}
	for _, e := range ae {
		for _, y := range bv {
			if err := addSimpleEdge(g, id(e[0], y), id(e[1], y)); err != nil {
				return nil, fmt.Errorf("%s: %w", methodCartesianProduct, err)
			}
		}
	}
	for _, x := range av {
		for _, e := range be {
			if err := addSimpleEdge(g, id(x, e[0]), id(x, e[1])); err != nil {
				return nil, fmt.Errorf("%s: %w", methodCartesianProduct, err)
			}
		}
	}

	return g, nil
}

// LineGraph returns L(g): one vertex "u-v" per edge of g (u < v), adjacent
// when the edges share an endpoint.
func LineGraph(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodLineGraph, ErrConstructFailed)
	}
	edges := simpleEdges(g)
	name := func(e [2]string) string { return e[0] + "-" + e[1] }
	incident := make(map[string][]int)

	out := core.NewGraph()
	for i, e := range edges {
		if err := out.AddVertex(name(e)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodLineGraph, err)
		}
		incident[e[0]] = append(incident[e[0]], i)
		incident[e[1]] = append(incident[e[1]], i)
	}
	for _, v := range g.Vertices() {
		list := incident[v]
		for i := range list {
			for j := i + 1; j < len(list); j++ {
				if err := addSimpleEdge(out, name(edges[list[i]]), name(edges[list[j]])); err != nil {
					return nil, fmt.Errorf("%s: %w", methodLineGraph, err)
				}
			}
		}
	}

	return out, nil
}

// Complement returns the graph on the same vertices whose edges are exactly
// the non-adjacent distinct pairs of g.
func Complement(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodComplement, ErrConstructFailed)
	}
	vs := g.Vertices()
	out := g.CloneEmpty()
	for i, u := range vs {
		for _, v := range vs[i+1:] {
			if g.HasEdge(u, v) {
				continue
			}
			if _, err := out.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplement, err)
			}
		}
	}

	return out, nil
}

// Relabel returns an isomorphic copy of g whose vertex IDs are a random
// permutation of g's own IDs, plus the mapping old → new. Edges are inserted
// in shuffled order so no insertion-order hint survives.
func Relabel(g *core.Graph, rng *rand.Rand) (*core.Graph, map[string]string, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%s: nil graph: %w", methodRelabel, ErrConstructFailed)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("%s: rng is required: %w", methodRelabel, ErrNeedRandSource)
	}
	vs := g.Vertices()
	shuffled := append([]string(nil), vs...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	mapping := make(map[string]string, len(vs))
	for i, v := range vs {
		mapping[v] = shuffled[i]
	}

	out := core.NewGraph()
	for _, v := range shuffled {
		if err := out.AddVertex(v); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodRelabel, err)
		}
	}
	edges := simpleEdges(g)
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	for _, e := range edges {
		if _, err := out.AddEdge(mapping[e[0]], mapping[e[1]]); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodRelabel, err)
		}
	}

	return out, mapping, nil
}

// DeleteVertex returns a copy of g without v and its incident edges.
func DeleteVertex(g *core.Graph, v string) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodDeleteVertex, ErrConstructFailed)
	}
	out := g.Clone()
	if err := out.RemoveVertex(v); err != nil {
		return nil, fmt.Errorf("%s: %q: %w", methodDeleteVertex, v, err)
	}

	return out, nil
}

// SwitchEdges returns a copy of g in which the edges a–b and c–d are replaced
// by a–d and c–b. Every vertex keeps its degree. The four endpoints must be
// distinct, a–b and c–d present, a–d and c–b absent; otherwise
// ErrInvalidParameter.
func SwitchEdges(g *core.Graph, a, b, c, d string) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodSwitchEdges, ErrConstructFailed)
	}
	ends := map[string]struct{}{a: {}, b: {}, c: {}, d: {}}
	switch {
	case len(ends) != 4:
		return nil, fmt.Errorf("%s: endpoints %s,%s,%s,%s not distinct: %w", methodSwitchEdges, a, b, c, d, ErrInvalidParameter)
	case !g.HasEdge(a, b) || !g.HasEdge(c, d):
		return nil, fmt.Errorf("%s: %s–%s or %s–%s missing: %w", methodSwitchEdges, a, b, c, d, ErrInvalidParameter)
	case g.HasEdge(a, d) || g.HasEdge(c, b):
		return nil, fmt.Errorf("%s: %s–%s or %s–%s already present: %w", methodSwitchEdges, a, d, c, b, ErrInvalidParameter)
	}

	out := g.Clone()
	for _, e := range out.Edges() {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) ||
			(e.From == c && e.To == d) || (e.From == d && e.To == c) {
			if err := out.RemoveEdge(e.ID); err != nil {
				return nil, fmt.Errorf("%s: %w", methodSwitchEdges, err)
			}
		}
	}
	for _, e := range [][2]string{{a, d}, {c, b}} {
		if _, err := out.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSwitchEdges, err)
		}
	}

	return out, nil
}
