package graphio

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/gossip/core"
)

// chainExpr is a list of edge runs separated by ',' ';' or whitespace.
type chainExpr struct {
	Runs []*chainRun `parser:"(@@ ((\";\" | \",\")? @@)*)?"`
}

// chainRun is "a-b-c": a path through the named vertices, or a lone vertex.
type chainRun struct {
	Head string   `parser:"@(Ident | Int)"`
	Tail []string `parser:"(\"-\" @(Ident | Int))*"`
}

var parseChain = participle.MustBuild[chainExpr]()

// chainID matches the vertex names the chain lexer tokenizes as one unit.
var chainID = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*|0|[1-9][0-9]*)$`)

// readChain parses edge runs; repeated vertices close cycles.
func readChain(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	expr, err := parseChain.ParseString("", string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	g := newInputGraph()
	for _, run := range expr.Runs {
		if err := g.AddVertex(run.Head); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		prev := run.Head
		for _, next := range run.Tail {
			if _, err := g.AddEdge(prev, next); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			prev = next
		}
	}

	return g, nil
}

// writeChain writes one run per edge and one per isolated vertex.
func writeChain(w io.Writer, g *core.Graph) error {
	for _, v := range g.Vertices() {
		if !chainID.MatchString(v) {
			return fmt.Errorf("%w: vertex %q is not representable in chain form", ErrSyntax, v)
		}
	}
	runs := isolated(g)
	for _, e := range g.Edges() {
		runs = append(runs, e.From+"-"+e.To)
	}
	_, err := io.WriteString(w, strings.Join(runs, ", ")+"\n")
	return err
}
