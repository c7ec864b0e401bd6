package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gossip/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestOptions(t *testing.T) {
	t.Parallel()
	g := build(t, builder.Path(3), builder.WithSymbNumb("v"))
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
	assert.True(t, g.HasEdge("v1", "v2"))

	g = build(t, builder.Star(3), builder.WithExcelColumnIDs())
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	g, err := builder.Build(builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
}
