package gossip

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/gossip/adjacency"
)

// Class groups the vertices that share one vertex fingerprint.
// Isomorphic graphs have the same class sizes; automorphic vertices always
// share a class.
type Class[V comparable] struct {
	Fingerprint VertexFingerprint
	Vertices    []V
}

// Classes partitions the vertices of adj by fingerprint. Classes come in
// ascending fingerprint order; vertex order inside a class is unspecified.
func Classes[V comparable](adj adjacency.Adjacency[V], opts ...Option) ([]Class[V], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, err := compile(adj, "Classes")
	if err != nil {
		return nil, err
	}
	per, err := fingerprintAll(idx, &o)
	if err != nil {
		return nil, err
	}

	tree := redblacktree.NewWith(func(a, b interface{}) int {
		return a.(VertexFingerprint).Compare(b.(VertexFingerprint))
	})
	for v, fp := range per {
		members, _ := tree.Get(fp)
		list, _ := members.([]V)
		tree.Put(fp, append(list, idx.IDs[v]))
	}

	out := make([]Class[V], 0, tree.Size())
	it := tree.Iterator()
	for it.Next() {
		out = append(out, Class[V]{
			Fingerprint: it.Key().(VertexFingerprint),
			Vertices:    it.Value().([]V),
		})
	}

	return out, nil
}
