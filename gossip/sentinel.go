package gossip

import "sort"

// contact is an unordered edge examined in one round, stored as (initiator, other).
type contact struct {
	u, w int
}

// shape is the connected-component structure of one round's frontier.
type shape struct {
	sizes  []int // sorted ascending
	groups int
}

// disjointSet is a union-find over dense vertex indices with path compression
// and union by rank. It is allocated once per run; frontierShape resets only
// the entries of the frontier it is given.
type disjointSet struct {
	parent []int
	rank   []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	return &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
	}
}

// find returns the root of u, halving the path on the way.
func (d *disjointSet) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the sets of u and v.
func (d *disjointSet) union(u, v int) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
}

// frontierShape partitions frontier into connected components using only the
// contacts whose endpoints are both in the frontier.
// A singleton frontier yields [1]. An empty frontier still gets a
// single-component answer, [0], so its shape stays comparable.
//
// Complexity: O((F + C)·α(F)) for F frontier vertices and C contacts.
func (d *disjointSet) frontierShape(frontier []int, contacts []contact, inFrontier []bool) shape {
	if len(frontier) == 0 {
		return shape{sizes: []int{0}, groups: 1}
	}
	for _, v := range frontier {
		d.parent[v] = v
		d.rank[v] = 0
		d.size[v] = 0
	}

	for _, c := range contacts {
		if inFrontier[c.u] && inFrontier[c.w] {
			d.union(c.u, c.w)
		}
	}

	for _, v := range frontier {
		d.size[d.find(v)]++
	}
	var sizes []int
	for _, v := range frontier {
		if d.parent[v] == v {
			sizes = append(sizes, d.size[v])
		}
	}
	sort.Ints(sizes)

	return shape{sizes: sizes, groups: len(sizes)}
}
