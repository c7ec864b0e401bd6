// SPDX-License-Identifier: MIT
// Package: gossip/builder
//
// impl_algebraic.go — vertex-transitive and strongly regular families:
// circulants, Paley, Kneser, Johnson, generalized Petersen, the rook's graph
// and the Shrikhande graph.
//
// Contract:
//   • These families are the natural stress set for degree-based
//     fingerprints: every vertex looks alike locally.
//   • Rook(4) and Shrikhande() are both srg(16,6,2,2) and non-isomorphic.
//
// Complexity:
//   • Circulant/Paley/Rook/Shrikhande O(n·k); Kneser/Johnson O(C(n,k)²·k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/gossip/core"
)

const (
	methodCirculant           = "Circulant"
	methodPaley               = "Paley"
	methodKneser              = "Kneser"
	methodJohnson             = "Johnson"
	methodGeneralizedPetersen = "GeneralizedPetersen"
	methodRook                = "Rook"
	methodShrikhande          = "Shrikhande"

	// maxSubsetVertices bounds C(n,k) for the subset-based families.
	maxSubsetVertices = 1 << 14
)

// Circulant returns a Constructor for C_n(offsets): i ↔ (i+s) mod n for every
// offset s. Offsets are taken modulo n; negative values are allowed, and s
// and n-s describe the same edges.
//
// Errors: ErrTooFewVertices (n < 1), ErrInvalidParameter (offset ≡ 0 mod n).
func Circulant(n int, offsets []int) Constructor {
	offs := append([]int(nil), offsets...)
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodCirculant, n, ErrTooFewVertices)
		}
		t := newTopology(n)
		for _, s := range offs {
			s = ((s % n) + n) % n
			if s == 0 {
				return fmt.Errorf("%s: offset ≡ 0 mod %d: %w", methodCirculant, n, ErrInvalidParameter)
			}
			for i := 0; i < n; i++ {
				t.link(i, (i+s)%n)
			}
		}

		return t.apply(g, cfg, methodCirculant)
	}
}

// Paley returns a Constructor for the Paley graph on a prime q ≡ 1 (mod 4):
// i ↔ j when i-j is a non-zero square mod q. The result is
// srg(q, (q-1)/2, (q-5)/4, (q-1)/4) and self-complementary.
//
// Prime powers are not supported.
func Paley(q int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if q < 5 {
			return fmt.Errorf("%s: q=%d < min=5: %w", methodPaley, q, ErrTooFewVertices)
		}
		if !isPrime(q) || q%4 != 1 {
			return fmt.Errorf("%s: q=%d is not a prime ≡ 1 mod 4: %w", methodPaley, q, ErrInvalidParameter)
		}
		square := make([]bool, q)
		for x := 1; x < q; x++ {
			square[x*x%q] = true
		}
		t := newTopology(q)
		for i := 0; i < q; i++ {
			for j := i + 1; j < q; j++ {
				if square[(j-i)%q] {
					t.link(i, j)
				}
			}
		}

		return t.apply(g, cfg, methodPaley)
	}
}

// Kneser returns a Constructor for KG(n,k): k-subsets of {0..n-1} (indexed in
// lexicographic order), adjacent when disjoint. KG(5,2) is the Petersen graph.
func Kneser(n, k int) Constructor {
	return subsetGraph(methodKneser, n, k, func(a, b []int) bool {
		return intersectionSize(a, b) == 0
	})
}

// Johnson returns a Constructor for J(n,k): k-subsets of {0..n-1}, adjacent
// when they share exactly k-1 elements.
func Johnson(n, k int) Constructor {
	return subsetGraph(methodJohnson, n, k, func(a, b []int) bool {
		return intersectionSize(a, b) == k-1
	})
}

// subsetGraph builds a graph over the k-subsets of {0..n-1} with the given
// adjacency predicate.
func subsetGraph(method string, n, k int, adjacent func(a, b []int) bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 1 || n < k {
			return fmt.Errorf("%s: n=%d, k=%d need 1 ≤ k ≤ n: %w", method, n, k, ErrInvalidParameter)
		}
		if binomialExceeds(n, k, maxSubsetVertices) {
			return fmt.Errorf("%s: C(%d,%d) > %d vertices: %w", method, n, k, maxSubsetVertices, ErrInvalidParameter)
		}
		sets := combinations(n, k)
		t := newTopology(len(sets))
		for i := range sets {
			for j := i + 1; j < len(sets); j++ {
				if adjacent(sets[i], sets[j]) {
					t.link(i, j)
				}
			}
		}

		return t.apply(g, cfg, method)
	}
}

// binomialExceeds reports whether C(n,k) > limit without overflowing.
func binomialExceeds(n, k, limit int) bool {
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
		if c > limit {
			return true
		}
	}

	return false
}

// GeneralizedPetersen returns a Constructor for GP(n,k): outer cycle 0..n-1,
// spokes i ↔ n+i and inner star polygon n+i ↔ n+(i+k) mod n.
// GP(5,2) is the Petersen graph; GP(n,1) is the prism.
func GeneralizedPetersen(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodGeneralizedPetersen, n, minCycleNodes, ErrTooFewVertices)
		}
		if k < 1 || 2*k >= n {
			return fmt.Errorf("%s: k=%d must satisfy 1 ≤ k < n/2: %w", methodGeneralizedPetersen, k, ErrInvalidParameter)
		}
		t := newTopology(2 * n)
		for i := 0; i < n; i++ {
			t.link(i, (i+1)%n)
			t.link(i, n+i)
			t.link(n+i, n+(i+k)%n)
		}

		return t.apply(g, cfg, methodGeneralizedPetersen)
	}
}

// Rook returns a Constructor for the n×n rook's graph K_n □ K_n: cell r*n+c is
// adjacent to every other cell in its row and column.
func Rook(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodRook, n, ErrTooFewVertices)
		}
		t := newTopology(n * n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				v := r*n + c
				for x := 0; x < n; x++ {
					if x != c {
						t.link(v, r*n+x)
					}
					if x != r {
						t.link(v, x*n+c)
					}
				}
			}
		}

		return t.apply(g, cfg, methodRook)
	}
}

// shrikhandeSteps is the connection set of the Shrikhande graph as a Cayley
// graph on Z4×Z4 (negatives are covered by the symmetric link).
var shrikhandeSteps = [3][2]int{{0, 1}, {1, 0}, {1, 1}}

// Shrikhande returns a Constructor for the Shrikhande graph on 16 vertices:
// (a,b) ↔ (a,b) ± {(0,1),(1,0),(1,1)} over Z4×Z4, vertex index a*4+b.
func Shrikhande() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const side = 4
		t := newTopology(side * side)
		for a := 0; a < side; a++ {
			for b := 0; b < side; b++ {
				for _, s := range shrikhandeSteps {
					t.link(a*side+b, ((a+s[0])%side)*side+(b+s[1])%side)
				}
			}
		}

		return t.apply(g, cfg, methodShrikhande)
	}
}
