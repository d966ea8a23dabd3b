// Package splitgraph: exhaustive longest-path enumeration.
package splitgraph

import (
	"sort"
)

// AllLongestPaths enumerates every maximal path tied for the global maximum
// length. Paths start at the outgoing edges of zero-in-degree vertices and
// extend through every continuation. Returns ErrCyclicGraph when g contains
// a cycle (longest paths are undefined there), and an empty result for a
// graph without edges.
func (g *Graph) AllLongestPaths() ([][]Edge, error) {
	if g.IsCyclic() {
		return nil, ErrCyclicGraph
	}

	var all [][]Edge
	for _, e := range g.startEdges() {
		g.extendPath([]Edge{e}, &all)
	}
	if len(all) == 0 {
		return nil, nil
	}

	// Keep only the paths tied for the maximum length; stable sort keeps
	// discovery order among equals.
	sort.SliceStable(all, func(i, j int) bool { return len(all[i]) < len(all[j]) })
	max := len(all[len(all)-1])
	longest := make([][]Edge, 0, len(all))
	for _, p := range all {
		if len(p) == max {
			longest = append(longest, p)
		}
	}

	return longest, nil
}

// LongestPathsAsSubgraph flattens all longest paths into one subgraph.
func (g *Graph) LongestPathsAsSubgraph() (*Graph, error) {
	longest, err := g.AllLongestPaths()
	if err != nil {
		return nil, err
	}
	var flat []Edge
	for _, p := range longest {
		flat = append(flat, p...)
	}

	return g.SubgraphFromEdges(flat)
}

// extendPath grows path through every outgoing edge of its endpoint and
// collects each visited prefix; the caller filters for the maximum length.
// Only called on acyclic graphs, so extension always terminates.
func (g *Graph) extendPath(path []Edge, all *[][]Edge) {
	head := path[len(path)-1]
	for _, e := range g.outgoing(head.To) {
		next := make([]Edge, 0, len(path)+1)
		next = append(next, path...)
		next = append(next, e)
		g.extendPath(next, all)
	}

	*all = append(*all, path)
}
