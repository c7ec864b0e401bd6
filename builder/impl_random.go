// SPDX-License-Identifier: MIT
// Package: gossip/builder
//
// impl_random.go — stochastic families: Erdős–Rényi G(n,p), random d-regular
// graphs and uniform random labeled trees.
//
// Contract:
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Validation happens before any mutation of g.
//   • Same seed ⇒ same graph: all map iteration goes through sorted keys.
//
// RandomRegular follows the Steger–Wormald pairing scheme: stubs are shuffled
// and paired; pairs that would form a loop or a parallel edge are returned to
// the pool, which is re-paired until empty. A pool that can no longer produce
// a valid edge restarts the attempt; after maxRegularAttempts restarts the
// constructor gives up with ErrConstructFailed.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gossip/core"
)

const (
	methodRandomSparse  = "RandomSparse"
	methodRandomRegular = "RandomRegular"
	methodRandomTree    = "RandomTree"

	minRRVertices      = 1
	maxRegularAttempts = 100
)

// RandomSparse returns a Constructor for G(n,p): each of the C(n,2) pairs is
// an edge independently with probability p, drawn in (i,j) lexicographic order.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.4f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		t := newTopology(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					t.link(i, j)
				}
			}
		}

		return t.apply(g, cfg, methodRandomSparse)
	}
}

// RandomRegular returns a Constructor for a simple d-regular graph on n vertices.
//
// Errors:
//   - ErrTooFewVertices: n < 1, d outside [0,n), or n·d odd.
//   - ErrNeedRandSource: cfg.rng == nil.
//   - ErrConstructFailed: no valid pairing within maxRegularAttempts.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		for attempt := 0; attempt < maxRegularAttempts; attempt++ {
			if t, ok := pairStubs(n, d, cfg.rng); ok {
				return t.apply(g, cfg, methodRandomRegular)
			}
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w", methodRandomRegular, maxRegularAttempts, ErrConstructFailed)
	}
}

// pairStubs runs one Steger–Wormald attempt.
func pairStubs(n, d int, rng *rand.Rand) (*topology, bool) {
	t := newTopology(n)
	stubs := make([]int, 0, n*d)
	for v := 0; v < n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}

	for len(stubs) > 0 {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
		potential := make(map[int]int)
		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u > v {
				u, v = v, u
			}
			if _, dup := t.seen[[2]int{u, v}]; u != v && !dup {
				t.link(u, v)
				continue
			}
			potential[u]++
			potential[v]++
		}
		if !suitable(t, potential) {
			return nil, false
		}
		stubs = stubs[:0]
		for _, v := range sortedKeys(potential) {
			for k := 0; k < potential[v]; k++ {
				stubs = append(stubs, v)
			}
		}
	}

	return t, true
}

// suitable reports whether some pair of distinct pending vertices can still
// be joined without a parallel edge.
func suitable(t *topology, potential map[int]int) bool {
	if len(potential) == 0 {
		return true
	}
	keys := sortedKeys(potential)
	for i, u := range keys {
		for _, v := range keys[i+1:] {
			if _, dup := t.seen[[2]int{u, v}]; !dup {
				return true
			}
		}
	}

	return false
}

// RandomTree returns a Constructor for a uniformly random labeled tree on n
// vertices, decoded from a random Prüfer sequence.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomTree, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTree, ErrNeedRandSource)
		}
		t := newTopology(n)
		if n == 2 {
			t.link(0, 1)
		}
		if n > 2 {
			seq := make([]int, n-2)
			for i := range seq {
				seq[i] = cfg.rng.Intn(n)
			}
			decodePrufer(t, seq)
		}

		return t.apply(g, cfg, methodRandomTree)
	}
}

// decodePrufer links the tree encoded by seq (length n-2) into t.
// Complexity: O(n²) worst case; trees here stay small.
func decodePrufer(t *topology, seq []int) {
	n := len(seq) + 2
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}
	for _, v := range seq {
		for leaf := 0; leaf < n; leaf++ {
			if degree[leaf] == 1 {
				t.link(leaf, v)
				degree[leaf]--
				degree[v]--
				break
			}
		}
	}
	u, w := -1, -1
	for v := 0; v < n; v++ {
		if degree[v] == 1 {
			if u < 0 {
				u = v
			} else {
				w = v
			}
		}
	}
	t.link(u, w)
}
