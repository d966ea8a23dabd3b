// Package splitgraph: graph construction, restriction, and label views.
package splitgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/informatik-mannheim/gcatcirc/code"
)

// Graph owns the vertex arena and the edge list of one split graph.
// Edges reference vertices by index only; the arena maps an index back to
// its slot for label lookups.
type Graph struct {
	alphabet []rune
	verts    []Vertex    // Build keeps this sorted by Index
	slots    map[int]int // vertex Index -> position in verts
	edges    []Edge      // Build keeps this sorted by origin Index
}

// Build constructs the split graph of c: for every word w of length n and
// every split point 0 < s < n, one edge from the w[0:s] vertex to the
// w[s:n] vertex. Vertices are deduplicated by index. After construction
// vertices are sorted by index and edges by origin index; path and cycle
// enumeration tie-breaks depend on exactly this ordering.
// Returns ErrEmptyCode for a code without words and ErrVertex if a word
// strays outside the code's alphabet.
func Build(c *code.Code) (*Graph, error) {
	words := c.Words()
	if len(words) == 0 {
		return nil, ErrEmptyCode
	}

	g := newGraph(c.Alphabet())
	for _, w := range words {
		if err := g.pushWord(w); err != nil {
			return nil, fmt.Errorf("splitgraph: word %q: %w", w, err)
		}
	}
	g.normalize()

	return g, nil
}

// SubgraphFromEdges builds a new graph containing exactly the given edges
// and their endpoints, in the given order. Returns ErrNoSubgraph if any
// edge is not present in g.
func (g *Graph) SubgraphFromEdges(edges []Edge) (*Graph, error) {
	sub := newGraph(g.alphabet)
	for _, e := range edges {
		if !g.containsEdge(e) {
			return nil, ErrNoSubgraph
		}
		sub.adoptEdge(g, e)
	}

	return sub, nil
}

// Component restricts g to the edges where either endpoint's label has
// length exactly i, preserving edge order. Returns ErrEmptyCode when no
// edge qualifies.
func (g *Graph) Component(i int) (*Graph, error) {
	sub := newGraph(g.alphabet)
	for _, e := range g.edges {
		if len([]rune(g.labelOf(e.From))) == i || len([]rune(g.labelOf(e.To))) == i {
			sub.adoptEdge(g, e)
		}
	}
	if len(sub.edges) == 0 {
		return nil, ErrEmptyCode
	}

	return sub, nil
}

// Vertices returns a copy of the vertex arena, in graph order (sorted by
// index for graphs produced by Build).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.verts))
	copy(out, g.verts)

	return out
}

// Edges returns a copy of the edge list, in graph order (sorted by origin
// index for graphs produced by Build).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexLabels returns the vertex labels in graph order.
func (g *Graph) VertexLabels() []string {
	out := make([]string, len(g.verts))
	for i, v := range g.verts {
		out[i] = v.Label
	}

	return out
}

// EdgeStrings renders every edge as "from-label...to-label", in graph order.
func (g *Graph) EdgeStrings() []string {
	out := make([]string, len(g.edges))
	for i, e := range g.edges {
		out[i] = g.labelOf(e.From) + "..." + g.labelOf(e.To)
	}

	return out
}

// Label reconstructs the word an edge stands for: the concatenation of its
// origin and target labels.
func (g *Graph) Label(e Edge) string {
	return g.labelOf(e.From) + g.labelOf(e.To)
}

// PathLabels lists the vertex labels along a path: every edge's origin
// label followed by the final edge's target label. Empty for an empty path.
func (g *Graph) PathLabels(path []Edge) []string {
	if len(path) == 0 {
		return nil
	}
	out := make([]string, 0, len(path)+1)
	for _, e := range path {
		out = append(out, g.labelOf(e.From))
	}
	out = append(out, g.labelOf(path[len(path)-1].To))

	return out
}

// PathString renders a path as its vertex labels joined by " -> ".
func (g *Graph) PathString(path []Edge) string {
	return strings.Join(g.PathLabels(path), " -> ")
}

// newGraph allocates an empty graph over the given alphabet.
func newGraph(alphabet []rune) *Graph {
	return &Graph{
		alphabet: alphabet,
		slots:    make(map[int]int),
	}
}

// pushWord adds all split edges of one word.
func (g *Graph) pushWord(w string) error {
	runes := []rune(w)
	for s := 1; s < len(runes); s++ {
		from, err := g.pushVertex(string(runes[:s]))
		if err != nil {
			return err
		}
		to, err := g.pushVertex(string(runes[s:]))
		if err != nil {
			return err
		}
		g.edges = append(g.edges, Edge{From: from, To: to})
	}

	return nil
}

// pushVertex interns the vertex for label and returns its index. A label
// already present reuses the existing arena slot.
func (g *Graph) pushVertex(label string) (int, error) {
	idx, err := vertexIndex(label, g.alphabet)
	if err != nil {
		return 0, err
	}
	if _, ok := g.slots[idx]; !ok {
		g.slots[idx] = len(g.verts)
		g.verts = append(g.verts, Vertex{Label: label, Index: idx})
	}

	return idx, nil
}

// adoptEdge copies one parent edge and its endpoints into g.
// Endpoints already validated by the parent, so indices are taken as-is.
func (g *Graph) adoptEdge(parent *Graph, e Edge) {
	for _, idx := range [2]int{e.To, e.From} {
		if _, ok := g.slots[idx]; !ok {
			g.slots[idx] = len(g.verts)
			g.verts = append(g.verts, parent.verts[parent.slots[idx]])
		}
	}
	g.edges = append(g.edges, e)
}

// normalize sorts vertices by index and edges by origin index. Sorting is
// stable so edges sharing an origin keep their insertion order.
func (g *Graph) normalize() {
	sort.SliceStable(g.verts, func(i, j int) bool { return g.verts[i].Index < g.verts[j].Index })
	for slot, v := range g.verts {
		g.slots[v.Index] = slot
	}
	sort.SliceStable(g.edges, func(i, j int) bool { return g.edges[i].From < g.edges[j].From })
}

// labelOf resolves a vertex index to its label.
func (g *Graph) labelOf(idx int) string {
	slot, ok := g.slots[idx]
	if !ok {
		return ""
	}

	return g.verts[slot].Label
}

// containsEdge reports whether e is present in g (endpoint-index equality).
func (g *Graph) containsEdge(e Edge) bool {
	for _, have := range g.edges {
		if have == e {
			return true
		}
	}

	return false
}

// startEdges returns the outgoing edges of every zero-in-degree vertex,
// in edge order.
func (g *Graph) startEdges() []Edge {
	roots := make(map[int]struct{}, len(g.verts))
	for _, v := range g.verts {
		incoming := false
		for _, e := range g.edges {
			if e.To == v.Index {
				incoming = true
				break
			}
		}
		if !incoming {
			roots[v.Index] = struct{}{}
		}
	}

	var out []Edge
	for _, e := range g.edges {
		if _, ok := roots[e.From]; ok {
			out = append(out, e)
		}
	}

	return out
}

// outgoing returns the edges leaving vertex idx, in edge order.
func (g *Graph) outgoing(idx int) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.From == idx {
			out = append(out, e)
		}
	}

	return out
}
