package gossip_test

import (
	"math/rand"

	"github.com/katalvlaran/gossip/adjacency"
)

// circulant builds C_n(offsets) on vertices 0..n-1.
func circulant(n int, offsets ...int) adjacency.Adjacency[int] {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for _, o := range offsets {
			edges = append(edges, [2]int{i, (i + o) % n})
		}
	}
	return adjacency.FromEdges(seq(n), edges).Normalize()
}

// rook builds the n×n rook's graph.
func rook(n int) adjacency.Adjacency[int] {
	var edges [][2]int
	for a := 0; a < n*n; a++ {
		for b := a + 1; b < n*n; b++ {
			if a/n == b/n || a%n == b%n {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	return adjacency.FromEdges(seq(n*n), edges)
}

// shrikhande builds the Shrikhande graph on Z4×Z4.
func shrikhande() adjacency.Adjacency[int] {
	var edges [][2]int
	steps := [][2]int{{1, 0}, {0, 1}, {1, 1}}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for _, d := range steps {
				edges = append(edges, [2]int{x*4 + y, ((x+d[0])%4)*4 + (y+d[1])%4})
			}
		}
	}
	return adjacency.FromEdges(seq(16), edges)
}

// path builds P_n.
func path(n int) adjacency.Adjacency[int] {
	var edges [][2]int
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return adjacency.FromEdges(seq(n), edges)
}

// complete builds K_n.
func complete(n int) adjacency.Adjacency[int] {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return adjacency.FromEdges(seq(n), edges)
}

// randomGraph builds a seeded G(n, p).
func randomGraph(rng *rand.Rand, n int, p float64) adjacency.Adjacency[int] {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return adjacency.FromEdges(seq(n), edges)
}

// relabel applies a random permutation of 0..n-1 and shuffles every list.
func relabel(rng *rand.Rand, a adjacency.Adjacency[int]) adjacency.Adjacency[int] {
	perm := make(map[int]int, len(a))
	for i, p := range rng.Perm(len(a)) {
		perm[i] = p
	}
	return shuffle(rng, adjacency.Permute(a, perm))
}

// shuffle permutes every neighbor list in place and returns a.
func shuffle(rng *rand.Rand, a adjacency.Adjacency[int]) adjacency.Adjacency[int] {
	for _, nbrs := range a {
		rng.Shuffle(len(nbrs), func(i, j int) { nbrs[i], nbrs[j] = nbrs[j], nbrs[i] })
	}
	return a
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
