// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gossip/core"
)

// TestGraph_AddRemoveVertex verifies AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.RemoveVertex("X"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
}

func TestGraph_AddEdgePolicies(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_LoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	_, err := g.AddEdge("A", "A")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A")
	require.NoError(t, err)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, deg) // loop counts twice, two parallel edges

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids)

	adj := g.AdjacencyList()
	assert.Equal(t, []string{"A", "B", "B"}, adj["A"])
	assert.Equal(t, []string{"A", "A"}, adj["B"])
}

func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	g := core.NewGraph()
	e1, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e1))
	assert.False(t, g.HasEdge("A", "B"))
	assert.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveVertex("C"))
	assert.Equal(t, 0, g.EdgeCount())
	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"c", "a"}, {"b", "d"}, {"a", "b"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e3", edges[2].ID)
	assert.Equal(t, "a", edges[2].From)
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Z"))

	c := g.Clone()
	eid, err := c.AddEdge("B", "Z")
	require.NoError(t, err)
	assert.Equal(t, "e2", eid) // sequence carried over
	assert.False(t, g.HasEdge("B", "Z"))
	assert.True(t, c.HasEdge("A", "B"))

	empty := g.CloneEmpty()
	assert.Equal(t, 3, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = g.AddEdge(string(rune('a'+i)), string(rune('A'+j%26))+"x")
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8*26, g.EdgeCount())
}
