package gossip

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gossip/adjacency"
)

// Run computes the fingerprint of a single start vertex.
// Returns ErrStartNotFound, ErrMalformedAdjacency or ErrOptionViolation for
// invalid input.
func Run[V comparable](adj adjacency.Adjacency[V], start V, opts ...Option) (VertexFingerprint, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return VertexFingerprint{}, err
	}
	idx, s, err := compileWithStart(adj, start, "Run")
	if err != nil {
		return VertexFingerprint{}, err
	}

	return newWalker(idx, &o, false).run(s), nil
}

// Trace is Run with per-round statistics attached.
func Trace[V comparable](adj adjacency.Adjacency[V], start V, opts ...Option) (*RunTrace, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, s, err := compileWithStart(adj, start, "Trace")
	if err != nil {
		return nil, err
	}

	w := newWalker(idx, &o, true)
	fp := w.run(s)

	return &RunTrace{Fingerprint: fp, Rounds: w.rounds}, nil
}

// Fingerprint runs the engine once per vertex and returns the sorted
// collection. The empty adjacency yields an empty fingerprint.
// Complexity: O(V·E) time.
func Fingerprint[V comparable](adj adjacency.Adjacency[V], opts ...Option) (GraphFingerprint, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, err := compile(adj, "Fingerprint")
	if err != nil {
		return nil, err
	}
	per, err := fingerprintAll(idx, &o)
	if err != nil {
		return nil, err
	}

	return sortFingerprints(per), nil
}

// fingerprintAll returns the fingerprint of every vertex, indexed like g.
// Runs are independent; with Workers > 1 they are spread over a bounded
// errgroup and cancelled together when Ctx is done.
func fingerprintAll(g indexedGraph, o *Options) ([]VertexFingerprint, error) {
	n := g.NumNodes()
	out := make([]VertexFingerprint, n)

	if o.Workers <= 1 {
		for v := 0; v < n; v++ {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
			out[v] = newWalker(g, o, false).run(v)
		}
		return out, nil
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for v := 0; v < n; v++ {
		v := v
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[v] = newWalker(g, o, false).run(v)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// sortFingerprints copies per into canonical order.
func sortFingerprints(per []VertexFingerprint) GraphFingerprint {
	fp := make(GraphFingerprint, len(per))
	copy(fp, per)
	sort.Slice(fp, func(i, j int) bool { return fp[i].Compare(fp[j]) < 0 })

	return fp
}

// compile builds the indexed view, mapping malformed input to ErrMalformedAdjacency.
func compile[V comparable](adj adjacency.Adjacency[V], method string) (*adjacency.Indexed[V], error) {
	idx, err := adjacency.Compile(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrMalformedAdjacency, err)
	}

	return idx, nil
}

// compileWithStart checks start membership first, then compiles.
func compileWithStart[V comparable](adj adjacency.Adjacency[V], start V, method string) (*adjacency.Indexed[V], int, error) {
	if _, ok := adj[start]; !ok {
		return nil, 0, fmt.Errorf("%s: %v: %w", method, start, ErrStartNotFound)
	}
	idx, err := compile(adj, method)
	if err != nil {
		return nil, 0, err
	}

	return idx, idx.Pos[start], nil
}
