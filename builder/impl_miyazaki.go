// SPDX-License-Identifier: MIT
// Package: gossip/builder
//
// impl_miyazaki.go — two n-cycles joined by a folded set of cross edges.
//
// Layout:
//   • a_i = i and b_i = n+i for i in [0,n).
//   • a_i ↔ a_{i+1}, b_i ↔ b_{i+1} (mod n).
//   • a_i ↔ b_i for i < n/2, a_i ↔ b_{n-1-i} otherwise.
//
// The folded half lands on b_0..b_{n/2-1}: those reach degree 4, the rest of
// b keeps degree 2, and a stays 3-regular.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gossip/core"
)

const (
	methodMiyazaki   = "Miyazaki"
	minMiyazakiNodes = 4
)

// Miyazaki returns a Constructor for the twisted double cycle of order n.
// n must be even and ≥ 4.
func Miyazaki(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minMiyazakiNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodMiyazaki, n, minMiyazakiNodes, ErrTooFewVertices)
		}
		if n%2 != 0 {
			return fmt.Errorf("%s: n=%d must be even: %w", methodMiyazaki, n, ErrInvalidParameter)
		}
		t := newTopology(2 * n)
		for i := 0; i < n; i++ {
			t.link(i, (i+1)%n)
			t.link(n+i, n+(i+1)%n)
		}
		for i := 0; i < n; i++ {
			if i < n/2 {
				t.link(i, n+i)
			} else {
				t.link(i, n+(n-1-i))
			}
		}

		return t.apply(g, cfg, methodMiyazaki)
	}
}
