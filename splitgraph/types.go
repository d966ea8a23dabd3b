// Package splitgraph: vertex/edge types, sentinel errors, index derivation.
package splitgraph

import (
	"errors"
)

var (
	// ErrEmptyCode indicates the graph, or a requested component, would
	// contain no edges.
	ErrEmptyCode = errors.New("splitgraph: empty code")

	// ErrVertex indicates a vertex label containing a symbol outside the
	// graph's alphabet.
	ErrVertex = errors.New("splitgraph: symbol outside alphabet")

	// ErrEdge is reserved for edge construction failures. Both endpoints are
	// validated before any edge is formed, so it is currently unreachable.
	ErrEdge = errors.New("splitgraph: bad edge")

	// ErrNoSubgraph indicates a requested edge list referencing an edge that
	// is not present in the parent graph.
	ErrNoSubgraph = errors.New("splitgraph: edge not in parent graph")

	// ErrCyclicGraph indicates longest paths were requested on a cyclic
	// graph, where they are undefined.
	ErrCyclicGraph = errors.New("splitgraph: graph is cyclic")
)

// Vertex is a node of the split graph: a contiguous substring of some code
// word plus its derived index. The index alone defines identity, ordering
// and deduplication; two vertices with the same label always collide to one
// node.
type Vertex struct {
	// Label is the prefix or suffix this vertex stands for.
	Label string

	// Index is the label read as a base-(alphabet size + 1) number over
	// 1-indexed alphabet positions. Deterministic for a fixed alphabet.
	Index int
}

// Edge is a directed arc between two vertices, stored as their indices so
// that endpoint identity survives sub-graphing without structural
// comparisons. The reconstructed word (origin label + target label) is
// derivable via Graph.Label.
type Edge struct {
	// From is the index of the origin (prefix) vertex.
	From int

	// To is the index of the target (suffix) vertex.
	To int
}

// vertexIndex derives the positional index for label over alphabet: the
// label is read as a little-endian base-(len(alphabet)+1) number with each
// symbol contributing its 1-indexed alphabet position as a digit.
// Returns ErrVertex if any symbol is outside the alphabet.
func vertexIndex(label string, alphabet []rune) (int, error) {
	pos := 1
	index := 0
	for _, r := range label {
		digit := -1
		for i, a := range alphabet {
			if a == r {
				digit = i + 1
				break
			}
		}
		if digit < 0 {
			return 0, ErrVertex
		}
		index += digit * pos
		pos *= len(alphabet) + 1
	}

	return index, nil
}
