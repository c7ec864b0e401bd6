package oracle

import (
	"sort"
	"strconv"
	"strings"
)

// refine runs color refinement on the disjoint union of g1 and g2, starting
// from vertex degrees, until the partition is stable. Colors are shared
// between both graphs. ok is false when the color histograms differ, which
// proves the graphs non-isomorphic.
func refine(g1, g2 indexed) (c1, c2 []int, ok bool) {
	n1, n2 := g1.NumNodes(), g2.NumNodes()
	out := func(v int) []int {
		if v < n1 {
			return g1.Out(v)
		}
		nbrs := g2.Out(v - n1)
		shifted := make([]int, len(nbrs))
		for i, x := range nbrs {
			shifted[i] = x + n1
		}
		return shifted
	}

	color := make([]int, n1+n2)
	for v := range color {
		color[v] = len(out(v))
	}
	classes := countDistinct(color)

	for {
		sigs := make([]string, len(color))
		for v := range color {
			nbrs := out(v)
			cs := make([]int, len(nbrs))
			for i, x := range nbrs {
				cs[i] = color[x]
			}
			sort.Ints(cs)

			var sb strings.Builder
			sb.WriteString(strconv.Itoa(color[v]))
			for _, c := range cs {
				sb.WriteByte(',')
				sb.WriteString(strconv.Itoa(c))
			}
			sigs[v] = sb.String()
		}

		distinct := make([]string, 0, len(sigs))
		seen := make(map[string]int, len(sigs))
		for _, s := range sigs {
			if _, dup := seen[s]; !dup {
				seen[s] = 0
				distinct = append(distinct, s)
			}
		}
		sort.Strings(distinct)
		for i, s := range distinct {
			seen[s] = i
		}
		for v, s := range sigs {
			color[v] = seen[s]
		}

		if len(distinct) == classes {
			break
		}
		classes = len(distinct)
	}

	c1, c2 = color[:n1], color[n1:]

	return c1, c2, histogram(c1) == histogram(c2)
}

func countDistinct(xs []int) int {
	set := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		set[x] = struct{}{}
	}

	return len(set)
}

// histogram renders a color multiset canonically.
func histogram(colors []int) string {
	sorted := append([]int(nil), colors...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, c := range sorted {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, ",")
}
