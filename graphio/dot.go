package graphio

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gossip/core"
)

// dotNode carries the DOT identifier of a gonum node.
type dotNode struct {
	id   int64
	name string
}

func (n *dotNode) ID() int64          { return n.id }
func (n *dotNode) DOTID() string      { return n.name }
func (n *dotNode) SetDOTID(id string) { n.name = id }

// dotGraph is the decode target. Self-loops are kept aside because the
// simple graph rejects them.
type dotGraph struct {
	*simple.UndirectedGraph
	loops []graph.Node
}

func (g *dotGraph) NewNode() graph.Node {
	return &dotNode{id: g.UndirectedGraph.NewNode().ID()}
}

func (g *dotGraph) SetEdge(e graph.Edge) {
	if e.From().ID() == e.To().ID() {
		g.loops = append(g.loops, e.From())
		return
	}
	g.UndirectedGraph.SetEdge(e)
}

// readDOT decodes one DOT graph. Directed input is read as undirected and
// repeated edges collapse into one.
func readDOT(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	dst := &dotGraph{UndirectedGraph: simple.NewUndirectedGraph()}
	if err := dot.Unmarshal(data, dst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	nodes := graph.NodesOf(dst.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	name := func(n graph.Node) string {
		if dn, ok := n.(*dotNode); ok && dn.name != "" {
			return dn.name
		}
		return strconv.FormatInt(n.ID(), 10)
	}

	g := newInputGraph()
	for _, n := range nodes {
		if err := g.AddVertex(name(n)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
	}
	for _, u := range nodes {
		nbrs := graph.NodesOf(dst.From(u.ID()))
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].ID() < nbrs[j].ID() })
		for _, w := range nbrs {
			if w.ID() <= u.ID() {
				continue
			}
			if _, err := g.AddEdge(name(u), name(w)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
		}
	}
	for _, n := range dst.loops {
		if _, err := g.AddEdge(name(n), name(n)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
	}

	return g, nil
}

// writeDOT emits the simple-graph view of g as an undirected DOT graph.
func writeDOT(w io.Writer, g *core.Graph) error {
	vs := g.Vertices()
	dst := simple.NewUndirectedGraph()
	nodes := make(map[string]graph.Node, len(vs))
	for i, v := range vs {
		n := &dotNode{id: int64(i), name: v}
		nodes[v] = n
		dst.AddNode(n)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		dst.SetEdge(simple.Edge{F: nodes[e.From], T: nodes[e.To]})
	}

	out, err := dot.Marshal(dst, "G", "", "\t")
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
