package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gossip/builder"
	"github.com/katalvlaran/gossip/core"
	"github.com/katalvlaran/gossip/graphio"
)

// ErrUnknownPairKind is returned for an unsupported --type.
var ErrUnknownPairKind = errors.New("unknown graph type")

// pairKinds lists the --type values of test and generate.
var pairKinds = []string{
	"regular", "cfi", "srg", "circulant", "miyazaki", "rook_shrikhande", "shrikhande_torus", "random",
}

// pairParams parameterizes a generated pair.
type pairParams struct {
	kind        string
	size        int
	degree      int
	probability float64
	seed        int64
}

// generatePair builds the two graphs of p. Pairs drawn from a random
// family use seeds seed and seed+1.
func generatePair(p pairParams) (*core.Graph, *core.Graph, error) {
	seeded := func(con builder.Constructor, seed int64) (*core.Graph, error) {
		return builder.Build(con, builder.WithSeed(seed))
	}
	twice := func(con builder.Constructor) (*core.Graph, *core.Graph, error) {
		g1, err := seeded(con, p.seed)
		if err != nil {
			return nil, nil, err
		}
		g2, err := seeded(con, p.seed+1)
		if err != nil {
			return nil, nil, err
		}
		return g1, g2, nil
	}
	relabeled := func(con builder.Constructor) (*core.Graph, *core.Graph, error) {
		g, err := builder.Build(con)
		if err != nil {
			return nil, nil, err
		}
		h, _, err := builder.Relabel(g, rand.New(rand.NewSource(p.seed)))
		if err != nil {
			return nil, nil, err
		}
		return g, h, nil
	}
	both := func(a, b builder.Constructor) (*core.Graph, *core.Graph, error) {
		g1, err := builder.Build(a)
		if err != nil {
			return nil, nil, err
		}
		g2, err := builder.Build(b)
		if err != nil {
			return nil, nil, err
		}
		return g1, g2, nil
	}

	switch p.kind {
	case "regular":
		return twice(builder.RandomRegular(p.size, p.degree))
	case "random":
		return twice(builder.RandomSparse(p.size, p.probability))
	case "cfi":
		base, err := seeded(builder.RandomSparse(p.size, p.probability), p.seed)
		if err != nil {
			return nil, nil, err
		}
		flips, err := builder.RandomFlips(base, rand.New(rand.NewSource(p.seed)))
		if err != nil {
			return nil, nil, err
		}
		return builder.CFIPair(base, flips)
	case "srg":
		return relabeled(builder.Shrikhande())
	case "circulant":
		return both(builder.Circulant(p.size, []int{1, 2}), builder.Circulant(p.size, []int{2, 1}))
	case "miyazaki":
		return relabeled(builder.Miyazaki(p.size))
	case "rook_shrikhande":
		return both(builder.Rook(4), builder.Shrikhande())
	case "shrikhande_torus":
		return both(builder.Shrikhande(), builder.Torus(4, 4))
	}

	return nil, nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownPairKind, p.kind, strings.Join(pairKinds, ", "))
}

// graphFile pairs a path with the graph read from or written to it.
type graphFile struct {
	path  string
	graph *core.Graph
}

// resolveFormat maps a --format value to a graphio.Format for path.
func resolveFormat(name, path string) (graphio.Format, error) {
	if name == "" || strings.EqualFold(name, "auto") {
		return graphio.DetectFormat(path), nil
	}
	return graphio.ParseFormat(name)
}

func readGraph(path, format string) (*core.Graph, error) {
	f, err := resolveFormat(format, path)
	if err != nil {
		return nil, err
	}
	return graphio.ReadFile(path, f)
}

func writeGraph(path string, g *core.Graph, format string) error {
	f, err := resolveFormat(format, path)
	if err != nil {
		return err
	}
	return graphio.WriteFile(path, g, f)
}
