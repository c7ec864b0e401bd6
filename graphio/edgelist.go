package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gossip/core"
)

// readEdgeList parses "u v" lines; see the package doc.
func readEdgeList(r io.Reader) (*core.Graph, error) {
	g := newInputGraph()
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, syntaxErr(line, "%v", err)
			}
		default:
			if _, err := g.AddEdge(fields[0], fields[1]); err != nil {
				return nil, syntaxErr(line, "%v", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}

	return g, nil
}

// writeEdgeList writes isolated vertices first, then every edge.
func writeEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, v := range g.Vertices() {
		if strings.ContainsAny(v, " \t\r\n#") {
			return fmt.Errorf("%w: vertex %q is not representable in an edge list", ErrSyntax, v)
		}
	}
	for _, v := range isolated(g) {
		fmt.Fprintln(bw, v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s %s\n", e.From, e.To)
	}

	return bw.Flush()
}
