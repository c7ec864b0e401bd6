// Package core provides a thread-safe in-memory undirected Graph with a
// minimal, composable API surface. It is the external graph representation
// that generators (package builder) and readers (package graphio) produce and
// that package adjacency adapts for fingerprinting.
//
// The Graph G = (V,E) supports:
//
//   - Simple graphs by default: no loops, no parallel edges
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to string) bool      // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	AdjacencyList() map[string][]string      // O(V+E), raw multigraph view
//	Vertices() []string                      // O(V·log V)
//	Edges() []Edge                           // O(E·log E), creation order
//	Degree(id string) (int, error)
//	VertexCount(), EdgeCount() int
//
//	// Cloning
//	CloneEmpty() *Graph                      // O(V): vertices+flags only
//	Clone() *Graph                           // O(V+E): deep copy
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
