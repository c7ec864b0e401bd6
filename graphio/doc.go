// Package graphio reads and writes core.Graph values in plain-text formats.
//
// Formats
//
//   - FormatEdgeList: one "u v" pair per line; a single token declares an
//     isolated vertex; '#' starts a comment; extra columns are ignored.
//   - FormatPajek: "*Vertices n" followed by "i [\"label\"]" lines, then
//     "*Edges"/"*Arcs" pair sections or "*Edgeslist"/"*Arcslist" adjacency
//     sections. Arcs are read as undirected edges. '%' starts a comment.
//   - FormatDOT: Graphviz DOT through gonum's encoding/dot.
//   - FormatChain: edge runs such as "a-b-c-a, d" (a triangle plus an
//     isolated vertex), parsed with participle.
//
// Readers preserve loops and parallel edges (the returned graph allows both);
// the fingerprint and the oracle ignore them. Writers emit edges in creation
// order so a read/write cycle is stable.
//
// DetectFormat maps file extensions: .edges .edgelist .txt → edge list,
// .net .pajek → Pajek, .dot .gv → DOT, .chain → chain; anything else falls
// back to the edge list. GML and GraphML are not supported.
package graphio
