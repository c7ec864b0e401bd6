// Package adjacency is the graph adapter layer: it converts external graph
// representations into a plain vertex → neighbor-list model and compiles that
// model into a dense, indexed form consumed by the fingerprinting engine and
// the exact oracle.
//
// The model is generic over the vertex identifier type. Identifiers are only
// compared for equality; no ordering is assumed or required.
//
//	a := adjacency.FromEdges([]int{0, 1, 2}, [][2]int{{0, 1}, {1, 2}})
//	idx, err := adjacency.Compile(a)
//
// Input lists may contain self-loops, repeated neighbors and one-sided
// entries. Compile treats them as no-ops, duplicates and the symmetric closure
// respectively; Validate only rejects neighbors that are not vertices.
package adjacency
