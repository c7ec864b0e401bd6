// SPDX-License-Identifier: MIT
// Package: gossip/builder
//
// impl_classic.go — elementary deterministic families.
//
// Contract:
//   • Vertices are idFn(0..n-1) added in ascending order; edges follow a
//     fixed enumeration so repeated builds are identical.
//   • All graphs are simple (no loops, no parallel edges).
//
// Complexity:
//   • Time O(n + m), Space O(m) for every constructor in this file.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gossip/core"
)

const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodTorus             = "Torus"
	methodLadder            = "Ladder"
	methodCircularLadder    = "CircularLadder"
	methodHypercube         = "Hypercube"
	methodFriendship        = "Friendship"
	methodBarbell           = "Barbell"
	methodLollipop          = "Lollipop"

	minCycleNodes = 3
	minPathNodes  = 1
	minStarNodes  = 2
	minWheelNodes = 4
	minTorusSide  = 3
	maxHypercube  = 20
)

// Cycle returns a Constructor for the simple cycle C_n: i ↔ (i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		t := newTopology(n)
		for i := 0; i < n; i++ {
			t.link(i, (i+1)%n)
		}

		return t.apply(g, cfg, methodCycle)
	}
}

// Path returns a Constructor for the path P_n: i ↔ i+1 for i < n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		t := newTopology(n)
		for i := 0; i+1 < n; i++ {
			t.link(i, i+1)
		}

		return t.apply(g, cfg, methodPath)
	}
}

// Star returns a Constructor for the star on n vertices: center 0 joined to 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		t := newTopology(n)
		for i := 1; i < n; i++ {
			t.link(0, i)
		}

		return t.apply(g, cfg, methodStar)
	}
}

// Wheel returns a Constructor for W_n: a hub 0 joined to every vertex of the
// rim cycle 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		t := newTopology(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			t.link(0, i+1)
			t.link(i+1, (i+1)%rim+1)
		}

		return t.apply(g, cfg, methodWheel)
	}
}

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		t := newTopology(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				t.link(i, j)
			}
		}

		return t.apply(g, cfg, methodComplete)
	}
}

// CompleteBipartite returns a Constructor for K_{m,n}: parts 0..m-1 and m..m+n-1.
func CompleteBipartite(m, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < 1 || n < 1 {
			return fmt.Errorf("%s: m=%d, n=%d must be ≥ 1: %w", methodCompleteBipartite, m, n, ErrTooFewVertices)
		}
		t := newTopology(m + n)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				t.link(i, m+j)
			}
		}

		return t.apply(g, cfg, methodCompleteBipartite)
	}
}

// Grid returns a Constructor for the rows×cols lattice; vertex (r,c) has index r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d must be ≥ 1: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		t := newTopology(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					t.link(v, v+1)
				}
				if r+1 < rows {
					t.link(v, v+cols)
				}
			}
		}

		return t.apply(g, cfg, methodGrid)
	}
}

// Torus returns a Constructor for C_rows □ C_cols (wrap-around grid).
// Both sides must be ≥ 3 so the result stays simple and 4-regular.
func Torus(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minTorusSide || cols < minTorusSide {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodTorus, rows, cols, minTorusSide, ErrTooFewVertices)
		}
		t := newTopology(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				t.link(v, r*cols+(c+1)%cols)
				t.link(v, ((r+1)%rows)*cols+c)
			}
		}

		return t.apply(g, cfg, methodTorus)
	}
}

// Ladder returns a Constructor for P_n □ K_2: rails 0..n-1 and n..2n-1 with rungs i ↔ n+i.
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodLadder, n, ErrTooFewVertices)
		}
		t := newTopology(2 * n)
		for i := 0; i < n; i++ {
			t.link(i, n+i)
			if i+1 < n {
				t.link(i, i+1)
				t.link(n+i, n+i+1)
			}
		}

		return t.apply(g, cfg, methodLadder)
	}
}

// CircularLadder returns a Constructor for the prism C_n □ K_2.
func CircularLadder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCircularLadder, n, minCycleNodes, ErrTooFewVertices)
		}
		t := newTopology(2 * n)
		for i := 0; i < n; i++ {
			t.link(i, n+i)
			t.link(i, (i+1)%n)
			t.link(n+i, n+(i+1)%n)
		}

		return t.apply(g, cfg, methodCircularLadder)
	}
}

// Hypercube returns a Constructor for Q_d: vertices are d-bit masks, adjacent
// when they differ in exactly one bit.
func Hypercube(d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if d < 1 {
			return fmt.Errorf("%s: d=%d < min=1: %w", methodHypercube, d, ErrTooFewVertices)
		}
		if d > maxHypercube {
			return fmt.Errorf("%s: d=%d > max=%d: %w", methodHypercube, d, maxHypercube, ErrInvalidParameter)
		}
		n := 1 << d
		t := newTopology(n)
		for v := 0; v < n; v++ {
			for b := 0; b < d; b++ {
				t.link(v, v^(1<<b))
			}
		}

		return t.apply(g, cfg, methodHypercube)
	}
}

// Friendship returns a Constructor for F_k: k triangles sharing the hub 0.
func Friendship(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", methodFriendship, k, ErrTooFewVertices)
		}
		t := newTopology(2*k + 1)
		for i := 0; i < k; i++ {
			a, b := 2*i+1, 2*i+2
			t.link(0, a)
			t.link(0, b)
			t.link(a, b)
		}

		return t.apply(g, cfg, methodFriendship)
	}
}

// Barbell returns a Constructor for two K_m joined by a path of p interior vertices.
// Layout: first clique 0..m-1, path m..m+p-1, second clique m+p..2m+p-1.
func Barbell(m, p int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < 2 {
			return fmt.Errorf("%s: m=%d < min=2: %w", methodBarbell, m, ErrTooFewVertices)
		}
		if p < 0 {
			return fmt.Errorf("%s: p=%d < 0: %w", methodBarbell, p, ErrInvalidParameter)
		}
		t := newTopology(2*m + p)
		second := m + p
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				t.link(i, j)
				t.link(second+i, second+j)
			}
		}
		prev := m - 1
		for i := 0; i < p; i++ {
			t.link(prev, m+i)
			prev = m + i
		}
		t.link(prev, second)

		return t.apply(g, cfg, methodBarbell)
	}
}

// Lollipop returns a Constructor for K_m with a tail path of p vertices attached to m-1.
func Lollipop(m, p int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < 2 {
			return fmt.Errorf("%s: m=%d < min=2: %w", methodLollipop, m, ErrTooFewVertices)
		}
		if p < 0 {
			return fmt.Errorf("%s: p=%d < 0: %w", methodLollipop, p, ErrInvalidParameter)
		}
		t := newTopology(m + p)
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				t.link(i, j)
			}
		}
		for i := m; i < m+p; i++ {
			t.link(i-1, i)
		}

		return t.apply(g, cfg, methodLollipop)
	}
}
