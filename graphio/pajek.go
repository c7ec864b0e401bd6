package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gossip/core"
)

type pajekSection int

const (
	sectionNone pajekSection = iota
	sectionVertices
	sectionPairs
	sectionLists
)

// pajekReader accumulates state while scanning a Pajek file.
type pajekReader struct {
	g       *core.Graph
	n       int
	labels  []string
	section pajekSection
	ready   bool // vertices materialized
}

// readPajek parses the "*Vertices" / "*Edges" dialect; see the package doc.
func readPajek(r io.Reader) (*core.Graph, error) {
	p := &pajekReader{g: newInputGraph()}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(stripPajekComment(sc.Text()))
		if text == "" {
			continue
		}
		var err error
		if strings.HasPrefix(text, "*") {
			err = p.header(line, text)
		} else {
			err = p.body(line, text)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	if p.section == sectionNone && !p.ready {
		return nil, fmt.Errorf("%w: missing *Vertices section", ErrSyntax)
	}
	if err := p.materialize(0); err != nil {
		return nil, err
	}

	return p.g, nil
}

// stripPajekComment cuts text at the first '%' outside a quoted label.
func stripPajekComment(text string) string {
	quoted := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			quoted = !quoted
		case '%':
			if !quoted {
				return text[:i]
			}
		}
	}
	return text
}

// header switches sections.
func (p *pajekReader) header(line int, text string) error {
	fields := strings.Fields(text)
	switch strings.ToLower(fields[0]) {
	case "*network":
		return nil
	case "*vertices":
		if p.section != sectionNone {
			return syntaxErr(line, "duplicate *Vertices")
		}
		if len(fields) < 2 {
			return syntaxErr(line, "*Vertices needs a count")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return syntaxErr(line, "bad vertex count %q", fields[1])
		}
		p.n = n
		p.labels = make([]string, n)
		for i := range p.labels {
			p.labels[i] = strconv.Itoa(i + 1)
		}
		p.section = sectionVertices
		return nil
	case "*edges", "*arcs":
		if err := p.materialize(line); err != nil {
			return err
		}
		p.section = sectionPairs
		return nil
	case "*edgeslist", "*arcslist":
		if err := p.materialize(line); err != nil {
			return err
		}
		p.section = sectionLists
		return nil
	default:
		return syntaxErr(line, "unsupported section %s", fields[0])
	}
}

// body handles a data line of the current section.
func (p *pajekReader) body(line int, text string) error {
	switch p.section {
	case sectionVertices:
		return p.vertexLine(line, text)
	case sectionPairs:
		ids, err := p.indices(line, strings.Fields(text))
		if err != nil {
			return err
		}
		if len(ids) < 2 {
			return syntaxErr(line, "edge needs two endpoints")
		}
		return p.edge(line, ids[0], ids[1])
	case sectionLists:
		ids, err := p.indices(line, strings.Fields(text))
		if err != nil {
			return err
		}
		for _, v := range ids[1:] {
			if err := p.edge(line, ids[0], v); err != nil {
				return err
			}
		}
		return nil
	default:
		return syntaxErr(line, "data before *Vertices")
	}
}

// vertexLine reads `i ["label"|label] [coords...]`.
func (p *pajekReader) vertexLine(line int, text string) error {
	head := strings.Fields(text)[0]
	idx, err := p.index(line, head)
	if err != nil {
		return err
	}
	rest := strings.TrimSpace(strings.TrimPrefix(text, head))
	if rest == "" {
		return nil
	}
	label := strings.Fields(rest)[0]
	if rest[0] == '"' {
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return syntaxErr(line, "unterminated label")
		}
		label = rest[1 : end+1]
	}
	if label == "" {
		return syntaxErr(line, "empty label")
	}
	p.labels[idx] = label
	return nil
}

// materialize adds the vertices once labels are final.
func (p *pajekReader) materialize(line int) error {
	if p.ready {
		return nil
	}
	if p.section == sectionNone {
		return syntaxErr(line, "missing *Vertices section")
	}
	seen := make(map[string]bool, p.n)
	for _, label := range p.labels {
		if seen[label] {
			return syntaxErr(line, "duplicate vertex label %q", label)
		}
		seen[label] = true
		if err := p.g.AddVertex(label); err != nil {
			return syntaxErr(line, "%v", err)
		}
	}
	p.ready = true
	return nil
}

func (p *pajekReader) index(line int, tok string) (int, error) {
	i, err := strconv.Atoi(tok)
	if err != nil || i < 1 || i > p.n {
		return 0, syntaxErr(line, "vertex index %q out of range 1..%d", tok, p.n)
	}
	return i - 1, nil
}

// indices converts leading integer tokens; trailing weights are ignored for
// pair sections, so only the first two tokens are strict there.
func (p *pajekReader) indices(line int, fields []string) ([]int, error) {
	limit := len(fields)
	if p.section == sectionPairs && limit > 2 {
		limit = 2
	}
	out := make([]int, 0, limit)
	for _, tok := range fields[:limit] {
		i, err := p.index(line, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func (p *pajekReader) edge(line, u, v int) error {
	if _, err := p.g.AddEdge(p.labels[u], p.labels[v]); err != nil {
		return syntaxErr(line, "%v", err)
	}
	return nil
}

// writePajek numbers vertices in sorted order and lists every edge.
func writePajek(w io.Writer, g *core.Graph) error {
	vs := g.Vertices()
	index := make(map[string]int, len(vs))
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "*Vertices %d\n", len(vs))
	for i, v := range vs {
		if strings.ContainsAny(v, "\"\r\n") {
			return fmt.Errorf("%w: vertex %q is not representable in Pajek", ErrSyntax, v)
		}
		index[v] = i + 1
		fmt.Fprintf(bw, "%d \"%s\"\n", i+1, v)
	}
	fmt.Fprintln(bw, "*Edges")
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", index[e.From], index[e.To])
	}

	return bw.Flush()
}
