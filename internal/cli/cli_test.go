package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gossip/bench"
	"github.com/katalvlaran/gossip/config"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTest_RookShrikhande(t *testing.T) {
	out, err := execute(t, "test", "--type", "rook_shrikhande")
	require.NoError(t, err)
	assert.Contains(t, out, "Testing rook_shrikhande graphs")
	assert.Contains(t, out, "6-regular")
	assert.Contains(t, out, "results match")
}

func TestTest_SentinelOffDisagrees(t *testing.T) {
	out, err := execute(t, "test", "--type", "rook_shrikhande", "--sentinel", "off")
	require.ErrorIs(t, err, ErrDisagree)
	assert.Contains(t, out, "differs")
	assert.Contains(t, out, "graph 2")
}

func TestTest_NoOracle(t *testing.T) {
	out, err := execute(t, "test", "--type", "circulant", "--size", "12", "--no-oracle")
	require.NoError(t, err)
	assert.Contains(t, out, "gossip match")
	assert.NotContains(t, out, "oracle")
}

func TestTest_Errors(t *testing.T) {
	_, err := execute(t, "test", "--type", "petersen")
	require.ErrorIs(t, err, ErrUnknownPairKind)

	_, err = execute(t, "test", "--sentinel", "sometimes")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "test", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestGeneratePair_AllKinds(t *testing.T) {
	for _, kind := range pairKinds {
		t.Run(kind, func(t *testing.T) {
			g1, g2, err := generatePair(pairParams{kind: kind, size: 10, degree: 3, probability: 0.3, seed: 42})
			require.NoError(t, err)
			require.NotNil(t, g1)
			require.NotNil(t, g2)
			assert.Positive(t, g1.VertexCount())
		})
	}
}

func TestGenerateCompareRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.net"), filepath.Join(dir, "b.net")

	out, err := execute(t, "generate", "--type", "srg", "--output", a+","+b)
	require.NoError(t, err)
	assert.Contains(t, out, a)
	assert.FileExists(t, b)

	out, err = execute(t, "compare", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "results match")

	out, err = execute(t, "stats", a)
	require.NoError(t, err)
	assert.Contains(t, out, "srg(16,6,2,2)")

	out, err = execute(t, "fingerprint", "--classes", a)
	require.NoError(t, err)
	assert.Contains(t, out, "[16] degree 6", "Shrikhande is vertex-transitive")

	out, err = execute(t, "fingerprint", "--vertex", "0", a)
	require.NoError(t, err)
	assert.Contains(t, out, "Receivers")

	dot := filepath.Join(dir, "a.dot")
	_, err = execute(t, "convert", a, dot)
	require.NoError(t, err)
	out, err = execute(t, "compare", a, dot, "--no-oracle")
	require.NoError(t, err, "auto detects the format per file")
	assert.Contains(t, out, "true")
}

func TestGenerate_OutputCount(t *testing.T) {
	_, err := execute(t, "generate", "--output", "only-one.edgelist")
	require.Error(t, err)
}

func TestBench(t *testing.T) {
	report := filepath.Join(t.TempDir(), "r.json")
	out, err := execute(t, "bench", "--family", "srg", "--no-oracle", "--json", report)
	require.NoError(t, err)
	assert.Contains(t, out, "Rook 4x4 vs Shrikhande")
	assert.Contains(t, out, "correct")

	f, err := os.Open(report)
	require.NoError(t, err)
	defer f.Close()
	rep, err := bench.ReadReport(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"srg"}, rep.Families)
	assert.Equal(t, "frontier", rep.Sentinel)
	assert.Equal(t, rep.Total.Total, rep.Total.Correct)

	out, err = execute(t, "bench", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "miyazaki")

	_, err = execute(t, "bench", "--family", "nope")
	require.ErrorIs(t, err, bench.ErrUnknownFamily)
}

func TestBench_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "gossip.toml")
	report := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`
[fingerprint]
counter = "degree"

[bench]
families = ["miyazaki"]
output = "`+filepath.ToSlash(report)+`"
`), 0o644))

	_, err := execute(t, "bench", "--config", cfg, "--no-oracle")
	require.NoError(t, err)

	f, err := os.Open(report)
	require.NoError(t, err)
	defer f.Close()
	rep, err := bench.ReadReport(f)
	require.NoError(t, err)
	assert.Equal(t, "degree", rep.Counter)
	assert.Equal(t, []string{"miyazaki"}, rep.Families)
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, LogDebug)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))

	newProgress(l).done("Ran 3 cases")
	assert.Contains(t, buf.String(), "Ran 3 cases")
}
