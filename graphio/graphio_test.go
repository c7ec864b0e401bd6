package graphio_test

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gossip/builder"
	"github.com/katalvlaran/gossip/core"
	"github.com/katalvlaran/gossip/graphio"
)

// edgeSet renders g's edges as sorted "u|v" keys with u <= v.
func edgeSet(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out = append(out, u+"|"+v)
	}
	sort.Strings(out)
	return out
}

func TestRoundTrip(t *testing.T) {
	petersen, err := builder.Build(builder.Kneser(5, 2))
	require.NoError(t, err)
	require.NoError(t, petersen.AddVertex("lonely"))

	for _, f := range []graphio.Format{graphio.FormatEdgeList, graphio.FormatPajek, graphio.FormatDOT, graphio.FormatChain} {
		f := f
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphio.Write(&buf, petersen, f))
			back, err := graphio.Read(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, petersen.Vertices(), back.Vertices())
			assert.Equal(t, edgeSet(petersen), edgeSet(back))
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	g, err := builder.Build(builder.Cycle(5), builder.WithSymbNumb("v"))
	require.NoError(t, err)

	for _, name := range []string{"c5.edges", "c5.net", "c5.gv", "c5.chain", "c5.unknown"} {
		path := filepath.Join(t.TempDir(), name)
		f := graphio.DetectFormat(path)
		require.NoError(t, graphio.WriteFile(path, g, f))
		back, err := graphio.ReadFile(path, f)
		require.NoError(t, err, name)
		assert.Equal(t, edgeSet(g), edgeSet(back), name)
	}

	_, err = graphio.ReadFile(filepath.Join(t.TempDir(), "missing.edges"), graphio.FormatEdgeList)
	require.Error(t, err)
}

func TestReadEdgeList(t *testing.T) {
	in := "# header\na b\nb c   # trailing comment\nz\n\nc d 0.5\n"
	g, err := graphio.Read(strings.NewReader(in), graphio.FormatEdgeList)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "z"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	g, err = graphio.Read(strings.NewReader("a a\na b\na b\n"), graphio.FormatEdgeList)
	require.NoError(t, err, "loops and parallel edges are kept")
	assert.Equal(t, 3, g.EdgeCount())
}

func TestReadPajek(t *testing.T) {
	in := `*Network test
% a comment
*Vertices 4
1 "alpha beta" 0.1 0.2
2 b
3
*Edges
1 2 1.0
2 3
*Arcslist
3 4 1
`
	g, err := graphio.Read(strings.NewReader(in), graphio.FormatPajek)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "alpha beta", "b"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("alpha beta", "b"))
	assert.True(t, g.HasEdge("3", "alpha beta"))
	assert.True(t, g.HasEdge("4", "3"))

	bad := []string{
		"1 2\n",
		"*Vertices 2\n*Edges\n1 3\n",
		"*Vertices x\n",
		"*Vertices 2\n1 \"same\"\n2 \"same\"\n*Edges\n",
		"*Vertices 2\n*Matrix\n0 1\n1 0\n",
		"*Edges\n1 2\n",
		"",
	}
	for _, in := range bad {
		_, err := graphio.Read(strings.NewReader(in), graphio.FormatPajek)
		require.ErrorIs(t, err, graphio.ErrSyntax, "%q", in)
	}
}

func TestReadDOT(t *testing.T) {
	in := `graph G { a -- b -- c; a -- a; d; }`
	g, err := graphio.Read(strings.NewReader(in), graphio.FormatDOT)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
	assert.True(t, g.HasEdge("b", "c"))
	assert.True(t, g.HasEdge("a", "a"))
	assert.Equal(t, 3, g.EdgeCount())

	_, err = graphio.Read(strings.NewReader("graph {"), graphio.FormatDOT)
	require.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestReadChain(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("0-1-2-0, 3; 4-5\n"), graphio.FormatChain)
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("2", "0"))

	_, err = graphio.Read(strings.NewReader("0--1"), graphio.FormatChain)
	require.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestWriteUnrepresentable(t *testing.T) {
	base, err := builder.Build(builder.Complete(3))
	require.NoError(t, err)
	cfi, _, err := builder.CFIPair(base, nil)
	require.NoError(t, err)

	require.NoError(t, graphio.Write(&bytes.Buffer{}, cfi, graphio.FormatEdgeList))
	require.ErrorIs(t, graphio.Write(&bytes.Buffer{}, cfi, graphio.FormatChain), graphio.ErrSyntax)

	spaced := core.NewGraph()
	require.NoError(t, spaced.AddVertex("a b"))
	require.ErrorIs(t, graphio.Write(&bytes.Buffer{}, spaced, graphio.FormatEdgeList), graphio.ErrSyntax)
	require.NoError(t, graphio.Write(&bytes.Buffer{}, spaced, graphio.FormatPajek))
}

func TestPajekPercentInLabel(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a%b", "c")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g, graphio.FormatPajek))
	back, err := graphio.Read(&buf, graphio.FormatPajek)
	require.NoError(t, err)
	assert.Equal(t, []string{"a%b", "c"}, back.Vertices())
	assert.True(t, back.HasEdge("a%b", "c"))

	back, err = graphio.Read(strings.NewReader("*Vertices 2 % two\n1 \"x%y\" % note\n*Edges\n1 2 % edge\n"), graphio.FormatPajek)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "x%y"}, back.Vertices())
	assert.Equal(t, 1, back.EdgeCount())
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := graphio.Read(strings.NewReader("*Vertices 1\n1 \"open\n"), graphio.FormatPajek)
	require.ErrorIs(t, err, graphio.ErrSyntax)
	assert.Equal(t, "line 2: graphio: syntax error: unterminated label", err.Error())
}

func TestFormats(t *testing.T) {
	assert.Equal(t, graphio.FormatPajek, graphio.DetectFormat("x/y.NET"))
	assert.Equal(t, graphio.FormatDOT, graphio.DetectFormat("g.dot"))
	assert.Equal(t, graphio.FormatEdgeList, graphio.DetectFormat("g.gml"))

	f, err := graphio.ParseFormat("Pajek")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatPajek, f)
	_, err = graphio.ParseFormat("graphml")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)

	_, err = graphio.Read(strings.NewReader(""), graphio.Format(99))
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
	require.ErrorIs(t, graphio.Write(&bytes.Buffer{}, nil, graphio.FormatDOT), graphio.ErrGraphNil)
	assert.Equal(t, "Format(99)", graphio.Format(99).String())
}
