package graphstats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gossip/builder"
	"github.com/katalvlaran/gossip/core"
	"github.com/katalvlaran/gossip/graphstats"
)

func mustBuild(t *testing.T, con builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.Build(con)
	require.NoError(t, err)
	return g
}

func TestCompute_Petersen(t *testing.T) {
	s, err := graphstats.Compute(context.Background(), mustBuild(t, builder.Kneser(5, 2)))
	require.NoError(t, err)
	assert.Equal(t, 10, s.Vertices)
	assert.Equal(t, 15, s.Edges)
	assert.InDelta(t, 1.0/3.0, s.Density, 1e-12)
	assert.True(t, s.Connected)
	assert.Equal(t, 2, s.Diameter)
	assert.Equal(t, 2, s.Radius)
	assert.True(t, s.Regular)
	assert.Equal(t, 3, s.Regularity)
	assert.InDelta(t, 3.0, s.AvgDegree, 1e-12)
	assert.InDelta(t, 0.0, s.DegreeStdDev, 1e-12)
}

func TestCompute_PathAndStar(t *testing.T) {
	s, err := graphstats.Compute(context.Background(), mustBuild(t, builder.Path(5)))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Diameter)
	assert.Equal(t, 2, s.Radius)
	assert.False(t, s.Regular)
	assert.Equal(t, -1, s.Regularity)
	assert.Equal(t, []int{2, 2, 2, 1, 1}, s.DegreeSequence)
	assert.Equal(t, 1, s.MinDegree)
	assert.Equal(t, 2, s.MaxDegree)

	s, err = graphstats.Compute(context.Background(), mustBuild(t, builder.Star(5)))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Diameter)
	assert.Equal(t, 1, s.Radius)
	assert.InDelta(t, 1.6, s.AvgDegree, 1e-12)
}

func TestCompute_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("c"))

	s, err := graphstats.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, s.Connected)
	assert.Equal(t, 2, s.Components)
	assert.Equal(t, -1, s.Diameter)
	assert.Equal(t, -1, s.Radius)

	empty, err := graphstats.Compute(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Vertices)
	assert.Equal(t, 0, empty.Components)

	_, err = graphstats.Compute(context.Background(), nil)
	require.ErrorIs(t, err, graphstats.ErrGraphNil)
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := graphstats.Compute(ctx, mustBuild(t, builder.Cycle(8)))
	require.ErrorIs(t, err, context.Canceled)
}

func TestStronglyRegular(t *testing.T) {
	p, ok := graphstats.StronglyRegular(mustBuild(t, builder.Shrikhande()))
	require.True(t, ok)
	assert.Equal(t, graphstats.SRG{V: 16, K: 6, Lambda: 2, Mu: 2}, p)
	assert.Equal(t, "srg(16,6,2,2)", p.String())

	p, ok = graphstats.StronglyRegular(mustBuild(t, builder.Paley(13)))
	require.True(t, ok)
	assert.Equal(t, graphstats.SRG{V: 13, K: 6, Lambda: 2, Mu: 3}, p)

	p, ok = graphstats.StronglyRegular(mustBuild(t, builder.Complete(4)))
	require.True(t, ok)
	assert.Equal(t, graphstats.SRG{V: 4, K: 3, Lambda: 2, Mu: 0}, p)

	_, ok = graphstats.StronglyRegular(mustBuild(t, builder.Cycle(6)))
	assert.False(t, ok, "C6 has non-adjacent pairs with 0 and 2 common neighbors")
	_, ok = graphstats.StronglyRegular(mustBuild(t, builder.Path(4)))
	assert.False(t, ok)
	_, ok = graphstats.StronglyRegular(nil)
	assert.False(t, ok)
}
