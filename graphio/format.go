package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gossip/core"
)

var (
	// ErrUnknownFormat is returned for a format name or value graphio cannot handle.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrSyntax is returned for malformed input or an ID a format cannot represent.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrGraphNil is returned when writing a nil graph.
	ErrGraphNil = errors.New("graphio: graph is nil")
)

// Format selects a text representation.
type Format int

const (
	FormatEdgeList Format = iota
	FormatPajek
	FormatDOT
	FormatChain
)

var formatNames = map[Format]string{
	FormatEdgeList: "edgelist",
	FormatPajek:    "pajek",
	FormatDOT:      "dot",
	FormatChain:    "chain",
}

// String returns the canonical format name.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves a name ("edgelist", "pajek", "dot", "chain"; case
// insensitive). The empty string and "auto" are not formats; callers use
// DetectFormat for those.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(name, n) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

var extensions = map[string]Format{
	".edges":    FormatEdgeList,
	".edgelist": FormatEdgeList,
	".txt":      FormatEdgeList,
	".net":      FormatPajek,
	".pajek":    FormatPajek,
	".dot":      FormatDOT,
	".gv":       FormatDOT,
	".chain":    FormatChain,
}

// DetectFormat picks a format from the file extension, defaulting to the edge list.
func DetectFormat(path string) Format {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return FormatEdgeList
}

// Read parses a graph from r.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	switch f {
	case FormatEdgeList:
		return readEdgeList(r)
	case FormatPajek:
		return readPajek(r)
	case FormatDOT:
		return readDOT(r)
	case FormatChain:
		return readChain(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Write serializes g to w.
func Write(w io.Writer, g *core.Graph, f Format) error {
	if g == nil {
		return ErrGraphNil
	}
	switch f {
	case FormatEdgeList:
		return writeEdgeList(w, g)
	case FormatPajek:
		return writePajek(w, g)
	case FormatDOT:
		return writeDOT(w, g)
	case FormatChain:
		return writeChain(w, g)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// ReadFile opens path and reads it in format f.
func ReadFile(path string, f Format) (*core.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	g, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteFile creates (or truncates) path and writes g in format f.
func WriteFile(path string, g *core.Graph, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(file, g, f)
}

// newInputGraph returns a graph that accepts whatever the file declares.
func newInputGraph() *core.Graph {
	return core.NewGraph(core.WithLoops(), core.WithMultiEdges())
}

// isolated lists vertices without incident edges, sorted.
func isolated(g *core.Graph) []string {
	var out []string
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 0 {
			out = append(out, v)
		}
	}
	return out
}

// syntaxErr wraps ErrSyntax with a line number.
func syntaxErr(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", line, ErrSyntax, fmt.Sprintf(format, args...))
}
