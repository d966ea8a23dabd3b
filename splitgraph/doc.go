// Package splitgraph implements the directed graph associated to a code:
// every non-trivial prefix/suffix split of every word becomes one edge from
// the prefix vertex to the suffix vertex. The shape of this graph
// characterizes the circularity family of code properties.
//
// For a word set X over alphabet A the graph G(X) = (V(X), E(X)) has
//
//	V(X) = { w[0:s], w[s:n] : w in X, 0 < s < n }
//	E(X) = { [w[0:s], w[s:n]] : w in X, 0 < s < n }
//
// so an n-letter word contributes n-1 edges, one per split point.
// See: Fimmel, Michel, Struengmann. N-nucleotide circular codes in graph
// theory (2007).
//
// What:
//
//   - Build(c): construct G(X) from a code; vertices are deduplicated by a
//     label-derived numeric index and sorted by it, edges sorted by origin
//     index. This ordering drives every tie-break downstream.
//   - IsCyclic / AllCycles: cycle existence and the full set of distinct
//     cycles, each rotated to start at its minimum-origin-index edge and
//     reported sorted ascending by length.
//   - AllLongestPaths: every maximal acyclic path tied for the global
//     maximum length (ErrCyclicGraph when cycles exist).
//   - SubgraphFromEdges / Component: edge-list and per-split-length
//     restrictions of the graph.
//   - Formatting helpers turning edges and paths into label strings.
//
// Complexity:
//
//	Cycle and path enumeration are exhaustive depth-first searches and can
//	be exponential in the number and length of words; tens of words can
//	yield hundreds of cycles. Construction is O(W·L²) vertex pushes.
//
// Errors:
//
//   - ErrEmptyCode     graph (or component) would contain no edges
//   - ErrVertex        a label contains a symbol outside the alphabet
//   - ErrEdge          reserved for edge construction failures
//   - ErrNoSubgraph    requested edge absent from the parent graph
//   - ErrCyclicGraph   longest paths are undefined on a cyclic graph
package splitgraph
