// Package bfs provides tunable options and error definitions
// for level-synchronous breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per layer.
	Ctx context.Context

	// OnLayer is called once per completed layer with its depth and the
	// sorted vertex IDs discovered at that depth. Returning an error aborts.
	OnLayer func(depth int, layer []string) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no layer hook, no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLayer: func(int, []string) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLayer registers a per-layer callback.
func WithOnLayer(fn func(depth int, layer []string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithMaxDepth stops the search after depth d.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal:
//   - Layers: vertices grouped by distance, each layer sorted.
//   - Order: Layers flattened.
//   - Depth: distance (in edges) from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Layers [][]string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Eccentricity is the depth of the last layer: the largest distance from the
// start to any reached vertex.
func (r *Result) Eccentricity() int {
	return len(r.Layers) - 1
}

// PathTo reconstructs the shortest path from the start vertex to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	path := make([]string, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
