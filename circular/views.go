// Package circular: string views over the split graph for boundary callers.
package circular

import (
	"github.com/informatik-mannheim/gcatcirc/code"
	"github.com/informatik-mannheim/gcatcirc/splitgraph"
)

// GraphEdges returns every split edge of c as "from-label...to-label", in
// graph order. Empty when the graph cannot be built.
func GraphEdges(c *code.Code) []string {
	g, err := splitgraph.Build(c)
	if err != nil {
		return nil
	}

	return g.EdgeStrings()
}

// GraphVertices returns every split vertex label of c, ordered by vertex
// index.
func GraphVertices(c *code.Code) []string {
	g, err := splitgraph.Build(c)
	if err != nil {
		return nil
	}

	return g.VertexLabels()
}

// CyclicSubgraphEdges returns the edges of the subgraph spanned by all
// cycles of c's split graph. Empty for circular codes.
func CyclicSubgraphEdges(c *code.Code) []string {
	g, err := splitgraph.Build(c)
	if err != nil {
		return nil
	}
	_, sub, err := g.CyclesAsSubgraph()
	if err != nil {
		return nil
	}

	return sub.EdgeStrings()
}

// LongestPathSubgraphEdges returns the edges of the subgraph spanned by all
// longest paths of c's split graph. Empty for non-circular codes.
func LongestPathSubgraphEdges(c *code.Code) []string {
	g, err := splitgraph.Build(c)
	if err != nil {
		return nil
	}
	sub, err := g.LongestPathsAsSubgraph()
	if err != nil {
		return nil
	}

	return sub.EdgeStrings()
}

// ComponentEdges returns the edges of the component of split length i:
// every edge with a prefix or suffix label of exactly i symbols.
// Empty when no edge qualifies.
func ComponentEdges(c *code.Code, i int) []string {
	sub := component(c, i)
	if sub == nil {
		return nil
	}

	return sub.EdgeStrings()
}

// ComponentCyclicEdges restricts CyclicSubgraphEdges to the component of
// split length i.
func ComponentCyclicEdges(c *code.Code, i int) []string {
	sub := component(c, i)
	if sub == nil {
		return nil
	}
	_, cycles, err := sub.CyclesAsSubgraph()
	if err != nil {
		return nil
	}

	return cycles.EdgeStrings()
}

// ComponentLongestPathEdges restricts LongestPathSubgraphEdges to the
// component of split length i.
func ComponentLongestPathEdges(c *code.Code, i int) []string {
	sub := component(c, i)
	if sub == nil {
		return nil
	}
	longest, err := sub.LongestPathsAsSubgraph()
	if err != nil {
		return nil
	}

	return longest.EdgeStrings()
}

// AllLongestPaths returns every longest path of c's split graph as a
// vertex-label sequence. Empty for non-circular codes.
func AllLongestPaths(c *code.Code) [][]string {
	g, err := splitgraph.Build(c)
	if err != nil {
		return nil
	}
	longest, err := g.AllLongestPaths()
	if err != nil {
		return nil
	}

	return pathLabels(g, longest)
}

// AllCyclicPaths returns every distinct cycle of c's split graph as a
// vertex-label sequence, canonically rotated, shortest first.
func AllCyclicPaths(c *code.Code) [][]string {
	g, err := splitgraph.Build(c)
	if err != nil {
		return nil
	}
	_, cycles := g.AllCycles()

	return pathLabels(g, cycles)
}

// component builds the split graph of c restricted to split length i, or
// nil when the graph or component cannot be built.
func component(c *code.Code, i int) *splitgraph.Graph {
	g, err := splitgraph.Build(c)
	if err != nil {
		return nil
	}
	sub, err := g.Component(i)
	if err != nil {
		return nil
	}

	return sub
}

// pathLabels maps edge paths to vertex-label sequences.
func pathLabels(g *splitgraph.Graph, paths [][]splitgraph.Edge) [][]string {
	out := make([][]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, g.PathLabels(p))
	}

	return out
}
