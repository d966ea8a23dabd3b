// Package splitgraph: exhaustive cycle detection and enumeration.
package splitgraph

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
)

// IsCyclic reports whether g contains a directed cycle. The search stops at
// the first cycle found. A code is circular exactly when its split graph is
// acyclic.
func (g *Graph) IsCyclic() bool {
	w := &cycleWalker{g: g}

	return w.run()
}

// AllCycles reports whether g is cyclic and enumerates every distinct
// cycle as an edge sequence. Each cycle is rotated so it begins at the edge
// whose origin has the minimum vertex index, deduplicated under that
// canonical form, and the result is sorted ascending by length (stable, so
// equally long cycles keep discovery order).
func (g *Graph) AllCycles() (bool, [][]Edge) {
	w := &cycleWalker{g: g, findAll: true, seen: hashset.New()}
	cyclic := w.run()
	sort.SliceStable(w.cycles, func(i, j int) bool { return len(w.cycles[i]) < len(w.cycles[j]) })

	return cyclic, w.cycles
}

// CyclesAsSubgraph flattens all cycles into one subgraph.
// The boolean mirrors AllCycles' cyclicity verdict.
func (g *Graph) CyclesAsSubgraph() (bool, *Graph, error) {
	cyclic, cycles := g.AllCycles()
	var flat []Edge
	for _, cyc := range cycles {
		flat = append(flat, cyc...)
	}
	sub, err := g.SubgraphFromEdges(flat)
	if err != nil {
		return cyclic, nil, err
	}

	return cyclic, sub, nil
}

// cycleWalker carries the shared state of one cycle search: the global
// visited-edge set pruning redundant start points, the cyclicity flag, and
// the canonical-cycle accumulator.
type cycleWalker struct {
	g       *Graph
	findAll bool
	found   bool
	visited map[Edge]struct{}
	seen    *hashset.Set // canonical cycle signatures (findAll only)
	cycles  [][]Edge
}

// run explores from every zero-in-degree vertex's outgoing edges and
// additionally from every edge directly, so cycles without any
// distinguishable entry point are found too.
func (w *cycleWalker) run() bool {
	w.visited = make(map[Edge]struct{}, len(w.g.edges))
	starts := append(w.g.startEdges(), w.g.edges...)
	for _, e := range starts {
		if _, ok := w.visited[e]; ok {
			continue
		}
		w.visited[e] = struct{}{}
		if w.walk([]Edge{e}) {
			if !w.findAll {
				return true
			}
			w.found = true
		}
	}

	return w.found
}

// walk extends the current path depth-first. A cycle is detected when the
// head edge's target is the origin of some edge already on the path, or
// when the head edge is a self-loop. Returns whether a cycle was seen.
func (w *cycleWalker) walk(path []Edge) bool {
	if !w.findAll && w.found {
		return true
	}

	// 1. Detection: the path closed back on itself, or ends in a self-loop.
	head := path[len(path)-1]
	closeAt := -1
	for i, e := range path {
		if e.From == head.To {
			closeAt = i
			break
		}
	}
	if closeAt >= 0 || head.From == head.To {
		if w.findAll {
			w.record(path, head, closeAt)
		}
		w.found = true

		return true
	}

	// 2. Extension: follow every edge leaving the head's target.
	for _, e := range w.g.outgoing(head.To) {
		w.visited[e] = struct{}{}
		next := make([]Edge, 0, len(path)+1)
		next = append(next, path...)
		next = append(next, e)
		if w.walk(next) && !w.findAll {
			return true
		}
	}

	return w.found
}

// record extracts the cyclic portion of path, rotates it to its canonical
// starting edge (minimum origin index), and appends it unless an equal
// cycle was already collected.
func (w *cycleWalker) record(path []Edge, head Edge, closeAt int) {
	var cyc []Edge
	if head.From == head.To {
		cyc = []Edge{head}
	} else {
		seg := path[closeAt:]
		minAt := 0
		for i, e := range seg {
			if e.From < seg[minAt].From {
				minAt = i
			}
		}
		cyc = make([]Edge, 0, len(seg))
		cyc = append(cyc, seg[minAt:]...)
		cyc = append(cyc, seg[:minAt]...)
	}

	sig := cycleSignature(cyc)
	if !w.seen.Contains(sig) {
		w.seen.Add(sig)
		w.cycles = append(w.cycles, cyc)
	}
}

// cycleSignature serializes a canonical cycle's endpoint indices.
func cycleSignature(cyc []Edge) string {
	var b strings.Builder
	for _, e := range cyc {
		b.WriteString(strconv.Itoa(e.From))
		b.WriteByte('>')
		b.WriteString(strconv.Itoa(e.To))
		b.WriteByte(';')
	}

	return b.String()
}
