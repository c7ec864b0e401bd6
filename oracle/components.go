package oracle

import (
	"sort"

	"github.com/aclements/go-moremath/graph/graphalg"
)

// componentSizes returns the sorted sizes of the connected components of g.
// On a symmetric graph the strongly connected components are exactly the
// connected components.
func componentSizes(g indexed) []int {
	sccs := graphalg.SCC(g, 0)
	sizes := make([]int, sccs.NumNodes())
	for cid := range sizes {
		sizes[cid] = len(sccs.Subnodes(cid))
	}
	sort.Ints(sizes)

	return sizes
}

// visitOrder lists the vertices of g component by component. Each component
// starts at its rarest-colored, highest-degree vertex and proceeds in BFS
// order, neighbors taken by decreasing degree. parent[i] is the index in g
// of order[i]'s BFS parent, or -1 for a component root.
func visitOrder(g indexed, color []int) (order, parent []int) {
	n := g.NumNodes()
	freq := make(map[int]int)
	for _, c := range color {
		freq[c]++
	}

	roots := make([]int, n)
	for v := range roots {
		roots[v] = v
	}
	sort.SliceStable(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if fa, fb := freq[color[a]], freq[color[b]]; fa != fb {
			return fa < fb
		}
		return len(g.Out(a)) > len(g.Out(b))
	})

	visited := graphalg.NewNodeMarks()
	order = make([]int, 0, n)
	parent = make([]int, 0, n)
	for _, r := range roots {
		if visited.Test(r) {
			continue
		}
		visited.Mark(r)
		queue := []int{r}
		order = append(order, r)
		parent = append(parent, -1)

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]

			nbrs := append([]int(nil), g.Out(u)...)
			sort.SliceStable(nbrs, func(i, j int) bool { return len(g.Out(nbrs[i])) > len(g.Out(nbrs[j])) })
			for _, x := range nbrs {
				if visited.Test(x) {
					continue
				}
				visited.Mark(x)
				queue = append(queue, x)
				order = append(order, x)
				parent = append(parent, u)
			}
		}
	}

	return order, parent
}
