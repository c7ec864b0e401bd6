package adjacency_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gossip/adjacency"
	"github.com/katalvlaran/gossip/core"
)

func TestValidate(t *testing.T) {
	ok := adjacency.Adjacency[int]{0: {1}, 1: {0}}
	require.NoError(t, ok.Validate())

	bad := adjacency.Adjacency[int]{0: {1, 7}, 1: {0}}
	err := bad.Validate()
	require.ErrorIs(t, err, adjacency.ErrMalformed)
	assert.Contains(t, err.Error(), "0 -> 7")
}

func TestEdgeCount_SymmetricClosure(t *testing.T) {
	// one-sided listing, duplicate, and a loop
	a := adjacency.Adjacency[string]{
		"a": {"b", "b", "a"},
		"b": {},
		"c": {"a"},
	}
	assert.Equal(t, 3, a.VertexCount())
	assert.Equal(t, 2, a.EdgeCount())
}

func TestNormalize(t *testing.T) {
	a := adjacency.Adjacency[int]{0: {0, 1, 1}, 1: {}, 2: {}}
	n := a.Normalize()

	sort.Ints(n[0])
	assert.Equal(t, []int{1}, n[0])
	assert.Equal(t, []int{0}, n[1])
	assert.Empty(t, n[2])
	assert.NotNil(t, n[2])
}

func TestFromEdges(t *testing.T) {
	a := adjacency.FromEdges([]int{9}, [][2]int{{0, 1}, {1, 2}})
	assert.Equal(t, 4, a.VertexCount())
	assert.Equal(t, 2, a.EdgeCount())
	assert.Empty(t, a[9])
	assert.ElementsMatch(t, []int{0, 2}, a[1])
}

func TestFromCore(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "b")
	require.NoError(t, g.AddVertex("z"))

	a := adjacency.FromCore(g)
	require.NoError(t, a.Validate())
	assert.Equal(t, []string{"b", "b"}, a["a"])
	assert.Equal(t, []string{"a", "a", "b"}, a["b"])
	assert.Empty(t, a["z"])
	assert.Equal(t, 1, a.EdgeCount())
}

func TestFromGonum(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(g.NewEdge(simple.Node(1), simple.Node(2)))
	g.SetEdge(g.NewEdge(simple.Node(2), simple.Node(3)))
	g.AddNode(simple.Node(7))

	a := adjacency.FromGonum(g)
	assert.Equal(t, 4, a.VertexCount())
	assert.Equal(t, 2, a.EdgeCount())
	assert.ElementsMatch(t, []int64{1, 3}, a[2])
	assert.Empty(t, a[7])
}

func TestPermute(t *testing.T) {
	a := adjacency.FromEdges([]int{}, [][2]int{{0, 1}, {1, 2}})
	p := adjacency.Permute(a, map[int]int{0: 2, 2: 0})

	assert.ElementsMatch(t, []int{1}, p[0])
	assert.ElementsMatch(t, []int{2, 0}, p[1])
	assert.Equal(t, a.EdgeCount(), p.EdgeCount())
}

func TestCompile(t *testing.T) {
	a := adjacency.Adjacency[string]{
		"a": {"b", "b", "a"},
		"b": {},
		"c": {"a"},
	}
	idx, err := adjacency.Compile(a)
	require.NoError(t, err)

	assert.Equal(t, 3, idx.NumNodes())
	assert.Equal(t, 2, idx.EdgeCount())
	assert.Equal(t, 2, idx.Degree(idx.Pos["a"]))
	assert.Equal(t, 1, idx.Degree(idx.Pos["b"]))
	for i, id := range idx.IDs {
		assert.Equal(t, i, idx.Pos[id])
	}

	_, err = adjacency.Compile(adjacency.Adjacency[int]{0: {5}})
	assert.ErrorIs(t, err, adjacency.ErrMalformed)
}
