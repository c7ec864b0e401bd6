package bench

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gossip/builder"
	"github.com/katalvlaran/gossip/core"
)

func mustBuild(t *testing.T, con builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.Build(con, builder.WithSeed(1))
	require.NoError(t, err)
	return g
}

func relabelOf(t *testing.T, g *core.Graph) *core.Graph {
	t.Helper()
	h, _, err := builder.Relabel(g, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return h
}

func TestRunner_Run(t *testing.T) {
	c6 := mustBuild(t, builder.Cycle(6))
	cases := []Case{
		{Category: "t", Name: "C6 relabel", G1: c6, G2: relabelOf(t, c6), Expected: yes},
		{Category: "t", Name: "C12 vs P12", G1: mustBuild(t, builder.Cycle(12)), G2: mustBuild(t, builder.Path(12)), Expected: no},
		{Category: "t", Name: "Rook vs Shrikhande", G1: mustBuild(t, builder.Rook(4)), G2: mustBuild(t, builder.Shrikhande()), Expected: no},
	}

	for _, workers := range []int{1, 3} {
		r := &Runner{Workers: workers, OracleTimeout: 10 * time.Second}
		res, err := r.Run(context.Background(), cases)
		require.NoError(t, err)
		require.Len(t, res, len(cases))

		for i, got := range res {
			assert.Equal(t, cases[i].Name, got.Name, "results keep case order")
			require.NotNil(t, got.Oracle, got.Name)
			assert.Equal(t, *cases[i].Expected, *got.Oracle, got.Name)
			assert.Equal(t, *got.Oracle, got.Gossip, got.Name)
			assert.True(t, got.Correct, got.Name)
		}
		assert.Equal(t, 6, res[0].Nodes)
		assert.Equal(t, 6, res[0].Edges)
	}
}

func TestRunner_SkipOracleUsesExpected(t *testing.T) {
	c5 := mustBuild(t, builder.Cycle(5))
	r := &Runner{SkipOracle: true, Stats: true}
	res, err := r.Run(context.Background(), []Case{
		{Name: "right", G1: c5, G2: relabelOf(t, c5), Expected: yes},
		{Name: "wrong", G1: c5, G2: relabelOf(t, c5), Expected: no},
		{Name: "unknown", G1: c5, G2: relabelOf(t, c5)},
	})
	require.NoError(t, err)
	assert.True(t, res[0].Correct)
	assert.False(t, res[1].Correct)
	assert.True(t, res[2].Correct)
	for _, r := range res {
		assert.Nil(t, r.Oracle)
		assert.Zero(t, r.OracleTime)
		require.NotNil(t, r.Stats)
		assert.Equal(t, 2, r.Stats.Regularity)
		assert.Equal(t, 2, r.Stats.Diameter)
	}
}

func TestRunner_Errors(t *testing.T) {
	r := &Runner{}
	_, err := r.Run(context.Background(), []Case{{Name: "nil"}})
	require.ErrorIs(t, err, ErrNilGraph)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c5 := mustBuild(t, builder.Cycle(5))
	_, err = r.Run(ctx, []Case{{Name: "c", G1: c5, G2: c5}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	ms := time.Millisecond
	results := []Result{
		{Gossip: true, Oracle: yes, Correct: true, GossipTime: 1 * ms, OracleTime: 4 * ms},
		{Gossip: false, Oracle: no, Correct: true, GossipTime: 2 * ms, OracleTime: 32 * ms},
		{Gossip: true, Oracle: no, Correct: false, GossipTime: 3 * ms, OracleTime: 3 * ms},
		{Gossip: true, Oracle: nil, Correct: true, GossipTime: 6 * ms, OracleTime: 100 * ms},
	}
	s := Summarize(results)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Correct)
	assert.Equal(t, 1, s.Timeouts)
	assert.Equal(t, 1, s.FalsePositives)
	assert.Zero(t, s.FalseNegatives)
	assert.InDelta(t, 0.75, s.AgreementRate(), 1e-12)
	assert.Equal(t, 3*ms, s.MeanGossip)
	assert.Equal(t, 13*ms, s.MeanOracle)
	// speedups 4, 16, 1
	assert.InDelta(t, 4.0, s.GeoMeanSpeedup, 1e-9)
	assert.Equal(t, 2*ms, s.MedianGossip)
	assert.Equal(t, 4*ms, s.MedianOracle)
	require.NotNil(t, s.MannWhitneyP)
	assert.True(t, *s.MannWhitneyP >= 0 && *s.MannWhitneyP <= 1)

	var separated []Result
	for i := 0; i < 8; i++ {
		d := time.Duration(i) * ms
		separated = append(separated, Result{Gossip: true, Oracle: yes, Correct: true,
			GossipTime: ms + d, OracleTime: 100*ms + d})
	}
	sep := Summarize(separated)
	require.NotNil(t, sep.MannWhitneyP)
	assert.Less(t, *sep.MannWhitneyP, 0.01, "disjoint timing samples differ in location")

	empty := Summarize(nil)
	assert.Equal(t, 1.0, empty.AgreementRate())
	assert.Zero(t, empty.GeoMeanSpeedup)
	assert.Nil(t, empty.MannWhitneyP)
}

func TestScalingExponent(t *testing.T) {
	var xs, ys []float64
	for n := 10.0; n <= 160; n *= 2 {
		xs = append(xs, n)
		ys = append(ys, 3*math.Pow(n, 2.5))
	}
	a, ok := ScalingExponent(xs, ys)
	require.True(t, ok)
	assert.InDelta(t, 2.5, a, 1e-9)

	_, ok = ScalingExponent([]float64{5}, []float64{1})
	assert.False(t, ok)
	_, ok = ScalingExponent([]float64{0, -1, 4}, []float64{1, 1, 0})
	assert.False(t, ok)
}

func TestGroupAndFailures(t *testing.T) {
	results := []Result{
		{Category: "b", Name: "z", Correct: false},
		{Category: "a", Name: "y", Correct: true},
		{Category: "b", Name: "x", Correct: false},
	}
	order, groups := Group(results)
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Len(t, groups["b"], 2)

	f := Failures(results)
	require.Len(t, f, 2)
	assert.Equal(t, "x", f[0].Name)
}

func TestFamilies_Deterministic(t *testing.T) {
	for _, f := range Families() {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			a, err := f.Build(3)
			require.NoError(t, err)
			require.NotEmpty(t, a)
			b, err := f.Build(3)
			require.NoError(t, err)
			require.Len(t, b, len(a))
			for i := range a {
				assert.Equal(t, f.Name, a[i].Category)
				assert.Equal(t, a[i].Name, b[i].Name)
				assert.Equal(t, a[i].G1.Edges(), b[i].G1.Edges(), a[i].Name)
				assert.Equal(t, a[i].G2.Edges(), b[i].G2.Edges(), a[i].Name)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	cases, err := Select([]string{"srg", "miyazaki"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "srg", cases[0].Category)
	assert.Equal(t, "miyazaki", cases[len(cases)-1].Category)

	_, err = Select([]string{"nope"}, 1)
	require.ErrorIs(t, err, ErrUnknownFamily)
}

func TestFamilies_KnownAnswersAgreeWithGossip(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the oracle")
	}
	cases, err := Select([]string{"classic", "srg", "products", "transforms", "kneser", "gpetersen"}, 5)
	require.NoError(t, err)
	res, err := (&Runner{SkipOracle: true}).Run(context.Background(), cases)
	require.NoError(t, err)
	for _, r := range res {
		if r.Expected != nil && *r.Expected {
			assert.True(t, r.Gossip, "isomorphic pair rejected: %s", r.Name)
		}
	}
}

func TestTransforms_DerivedPairs(t *testing.T) {
	cases, err := Select([]string{"transforms"}, 3)
	require.NoError(t, err)
	byName := make(map[string]Case, len(cases))
	for _, c := range cases {
		byName[c.Name] = c
	}

	want := map[string]bool{
		"Petersen-v vs Petersen-w": true,
		"P6-end vs P6-inner":       false,
		"C6 vs 2C3":                false,
	}
	for name, iso := range want {
		c, ok := byName[name]
		require.True(t, ok, name)
		require.NotNil(t, c.Expected, name)
		assert.Equal(t, iso, *c.Expected, name)
	}

	c := byName["Petersen-v vs Petersen-w"]
	assert.Equal(t, 9, c.G1.VertexCount())
	assert.Equal(t, 12, c.G1.EdgeCount())

	res, err := (&Runner{SkipOracle: true}).Run(context.Background(), []Case{
		byName["Petersen-v vs Petersen-w"], byName["P6-end vs P6-inner"], byName["C6 vs 2C3"],
	})
	require.NoError(t, err)
	for _, r := range res {
		assert.True(t, r.Correct, r.Name)
	}
}

func TestRandomRegular_Agreement(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the oracle")
	}
	cases, err := Select([]string{"regular"}, 11)
	require.NoError(t, err)
	res, err := (&Runner{OracleTimeout: 10 * time.Second, Workers: 2}).Run(context.Background(), cases)
	require.NoError(t, err)

	s := Summarize(res)
	assert.Zero(t, s.FalseNegatives)
	assert.GreaterOrEqual(t, s.AgreementRate(), 0.9)
}

func TestRenderTable(t *testing.T) {
	res := []Result{
		{Name: "iso pair", Nodes: 6, Edges: 6, Gossip: true, Oracle: yes, Correct: true,
			GossipTime: time.Millisecond, OracleTime: 3 * time.Millisecond},
		{Name: "slow pair", Nodes: 9, Edges: 12, Gossip: false, Correct: true,
			GossipTime: time.Millisecond, OracleTime: time.Second},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, "demo", res))
	out := buf.String()
	for _, want := range []string{"demo", "Case", "iso pair", "slow pair", "ISO", "NON-ISO", "TIMEOUT", "3.0x", "Yes"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, RenderAll(&buf, res))
	assert.Contains(t, buf.String(), "2/2 correct")
}

func TestReport_JSON(t *testing.T) {
	res := []Result{
		{Category: "a", Name: "one", Nodes: 10, Gossip: true, Oracle: yes, Correct: true,
			GossipTime: time.Millisecond, OracleTime: 2 * time.Millisecond},
		{Category: "b", Name: "two", Nodes: 40, Gossip: false, Oracle: no, Correct: true,
			GossipTime: 8 * time.Millisecond, OracleTime: 9 * time.Millisecond},
	}
	rep := NewReport(res, 42, "frontier", "hear", []string{"a", "b"})
	require.NotEmpty(t, rep.ID)
	require.NotNil(t, rep.Scaling)
	assert.InDelta(t, 1.5, *rep.Scaling, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))
	assert.True(t, strings.Contains(buf.String(), `"seed": 42`))

	back, err := ReadReport(&buf)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, back.ID)
	assert.Equal(t, rep.Groups, back.Groups)
	require.Len(t, back.Results, 2)
	assert.Equal(t, 8*time.Millisecond, back.Results[1].GossipTime)
}
