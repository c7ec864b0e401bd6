// File: builder_impl_test.go
// Package builder_test verifies topology, counts, determinism and the error
// contract of every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gossip/builder"
	"github.com/katalvlaran/gossip/core"
)

// build runs a single constructor with optional builder options.
func build(t *testing.T, con builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, opts, con)
	require.NoError(t, err)
	return g
}

// degrees returns the degree of every vertex.
func degrees(t *testing.T, g *core.Graph) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out[v] = d
	}
	return out
}

// connected reports whether g has a single component (or no vertices).
func connected(g *core.Graph) bool {
	vs := g.Vertices()
	if len(vs) == 0 {
		return true
	}
	seen := map[string]bool{vs[0]: true}
	stack := []string{vs[0]}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbrs, _ := g.NeighborIDs(u)
		for _, w := range nbrs {
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}
	return len(seen) == len(vs)
}

// commonNeighbors counts shared neighbors of u and v.
func commonNeighbors(t *testing.T, g *core.Graph, u, v string) int {
	t.Helper()
	nu, err := g.NeighborIDs(u)
	require.NoError(t, err)
	nv, err := g.NeighborIDs(v)
	require.NoError(t, err)
	set := make(map[string]bool, len(nu))
	for _, w := range nu {
		set[w] = true
	}
	n := 0
	for _, w := range nv {
		if set[w] {
			n++
		}
	}
	return n
}

// requireSRG asserts g is strongly regular with parameters (v,k,λ,μ).
func requireSRG(t *testing.T, g *core.Graph, v, k, lambda, mu int) {
	t.Helper()
	vs := g.Vertices()
	require.Len(t, vs, v)
	for _, d := range degrees(t, g) {
		require.Equal(t, k, d)
	}
	for i, a := range vs {
		for _, b := range vs[i+1:] {
			want := mu
			if g.HasEdge(a, b) {
				want = lambda
			}
			require.Equal(t, want, commonNeighbors(t, g, a, b), "pair %s,%s", a, b)
		}
	}
}

func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantV   int
		wantE   int
		regular int // -1 when not regular
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, 2},
		{"Path(4)", builder.Path(4), 4, 3, -1},
		{"Path(1)", builder.Path(1), 1, 0, 0},
		{"Star(5)", builder.Star(5), 5, 4, -1},
		{"Wheel(6)", builder.Wheel(6), 6, 10, -1},
		{"Complete(5)", builder.Complete(5), 5, 10, 4},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6, -1},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, -1},
		{"Torus(3,4)", builder.Torus(3, 4), 12, 24, 4},
		{"Ladder(4)", builder.Ladder(4), 8, 10, -1},
		{"CircularLadder(5)", builder.CircularLadder(5), 10, 15, 3},
		{"Hypercube(3)", builder.Hypercube(3), 8, 12, 3},
		{"Friendship(3)", builder.Friendship(3), 7, 9, -1},
		{"Barbell(3,2)", builder.Barbell(3, 2), 8, 9, -1},
		{"Lollipop(4,2)", builder.Lollipop(4, 2), 6, 8, -1},
		{"Circulant(13,[1,3,4])", builder.Circulant(13, []int{1, 3, 4}), 13, 39, 6},
		{"Circulant(8,[4])", builder.Circulant(8, []int{4}), 8, 4, 1},
		{"Circulant(7,[1,-1,6])", builder.Circulant(7, []int{1, -1, 6}), 7, 7, 2},
		{"Paley(13)", builder.Paley(13), 13, 39, 6},
		{"Kneser(5,2)", builder.Kneser(5, 2), 10, 15, 3},
		{"Johnson(5,2)", builder.Johnson(5, 2), 10, 30, 6},
		{"GeneralizedPetersen(5,2)", builder.GeneralizedPetersen(5, 2), 10, 15, 3},
		{"Rook(4)", builder.Rook(4), 16, 48, 6},
		{"Shrikhande", builder.Shrikhande(), 16, 48, 6},
		{"Miyazaki(6)", builder.Miyazaki(6), 12, 18, -1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.regular >= 0 {
				for v, d := range degrees(t, g) {
					assert.Equal(t, tc.regular, d, "vertex %s", v)
				}
			}
		})
	}
}

func TestBuilders_StronglyRegular(t *testing.T) {
	t.Parallel()
	requireSRG(t, build(t, builder.Rook(4)), 16, 6, 2, 2)
	requireSRG(t, build(t, builder.Shrikhande()), 16, 6, 2, 2)
	requireSRG(t, build(t, builder.Paley(13)), 13, 6, 2, 3)
	requireSRG(t, build(t, builder.Kneser(5, 2)), 10, 3, 0, 1)
}

func TestBuilders_Miyazaki_Layout(t *testing.T) {
	t.Parallel()
	g := build(t, builder.Miyazaki(6))
	deg := degrees(t, g)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 3, deg[builder.DefaultIDFn(i)], "a%d", i)
	}
	// b0..b2 carry the folded cross edges.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 4, deg[builder.DefaultIDFn(6+i)], "b%d", i)
		assert.Equal(t, 2, deg[builder.DefaultIDFn(9+i)], "b%d", 3+i)
	}
	assert.True(t, g.HasEdge("5", "6"))
	assert.True(t, g.HasEdge("3", "8"))
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Path(0)", builder.Path(0), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Torus(2,5)", builder.Torus(2, 5), nil, builder.ErrTooFewVertices},
		{"Hypercube(40)", builder.Hypercube(40), nil, builder.ErrInvalidParameter},
		{"Circulant zero offset", builder.Circulant(5, []int{5}), nil, builder.ErrInvalidParameter},
		{"Paley(7)", builder.Paley(7), nil, builder.ErrInvalidParameter},
		{"Paley(25)", builder.Paley(25), nil, builder.ErrInvalidParameter},
		{"Kneser too large", builder.Kneser(30, 15), nil, builder.ErrInvalidParameter},
		{"Johnson k=0", builder.Johnson(4, 0), nil, builder.ErrInvalidParameter},
		{"GeneralizedPetersen(6,3)", builder.GeneralizedPetersen(6, 3), nil, builder.ErrInvalidParameter},
		{"Miyazaki(5)", builder.Miyazaki(5), nil, builder.ErrInvalidParameter},
		{"Miyazaki(2)", builder.Miyazaki(2), nil, builder.ErrTooFewVertices},
		{"Barbell negative path", builder.Barbell(3, -1), nil, builder.ErrInvalidParameter},
		{"RandomRegular odd", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular no rng", builder.RandomRegular(6, 3), nil, builder.ErrNeedRandSource},
		{"RandomSparse p>1", builder.RandomSparse(5, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomTree no rng", builder.RandomTree(5), nil, builder.ErrNeedRandSource},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuilders_Random(t *testing.T) {
	t.Parallel()

	t.Run("RandomRegular", func(t *testing.T) {
		for _, d := range []int{0, 2, 3, 5} {
			g := build(t, builder.RandomRegular(20, d), builder.WithSeed(42))
			require.Equal(t, 20*d/2, g.EdgeCount())
			for v, deg := range degrees(t, g) {
				require.Equal(t, d, deg, "vertex %s", v)
			}
		}
	})

	t.Run("RandomRegular deterministic", func(t *testing.T) {
		a := build(t, builder.RandomRegular(30, 4), builder.WithSeed(7))
		b := build(t, builder.RandomRegular(30, 4), builder.WithSeed(7))
		require.Equal(t, a.Edges(), b.Edges())
	})

	t.Run("RandomSparse extremes", func(t *testing.T) {
		assert.Equal(t, 0, build(t, builder.RandomSparse(10, 0), builder.WithSeed(1)).EdgeCount())
		assert.Equal(t, 45, build(t, builder.RandomSparse(10, 1), builder.WithSeed(1)).EdgeCount())
	})

	t.Run("RandomTree", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 10, 40} {
			g := build(t, builder.RandomTree(n), builder.WithRand(rand.New(rand.NewSource(int64(n)))))
			require.Equal(t, n, g.VertexCount())
			require.Equal(t, n-1, g.EdgeCount())
			require.True(t, connected(g), "n=%d", n)
		}
	})
}

func TestBuildGraph_ChainsConstructors(t *testing.T) {
	t.Parallel()
	// Path(3) then Cycle(3) reuses IDs 0..2 and adds the closing edge 0-2.
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Cycle(3))
	require.Error(t, err, "duplicate edge must be rejected on a simple graph")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	require.Nil(t, g)

	g, err = builder.BuildGraph([]core.GraphOption{core.WithMultiEdges()}, nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
}
