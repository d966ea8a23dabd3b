// Package circular: the predicate layer over the split graph.
package circular

import (
	"math"

	"github.com/informatik-mannheim/gcatcirc/code"
	"github.com/informatik-mannheim/gcatcirc/splitgraph"
)

// KUnbounded is returned by ExactKCircular for circular codes: the code is
// k-circular for every k, so no finite bound applies.
const KUnbounded uint32 = math.MaxUint32

// IsCircular reports whether c is a circular code: every concatenation of
// code words written on a circle has a single decomposition. Equivalent to
// the split graph being acyclic.
func IsCircular(c *code.Code) bool {
	g, err := splitgraph.Build(c)
	if err != nil {
		return false
	}

	return !g.IsCyclic()
}

// IsCommaFree reports whether c is comma free: no concatenation of a
// non-empty suffix and a non-empty prefix of code words forms a code word.
// Holds iff the split graph is acyclic and its longest paths have at most
// 2 edges.
func IsCommaFree(c *code.Code) bool {
	return longestPathLen(c, 2)
}

// IsStrongCommaFree reports whether c is strong comma free: no non-empty
// suffix of any code word is a non-empty prefix of a code word. Holds iff
// the split graph is acyclic and its longest paths have exactly 1 edge.
func IsStrongCommaFree(c *code.Code) bool {
	g, err := splitgraph.Build(c)
	if err != nil {
		return false
	}
	longest, err := g.AllLongestPaths()
	if err != nil || len(longest) == 0 {
		return false
	}

	return len(longest[0]) == 1
}

// ExactKCircular returns the exact k such that every cyclic concatenation
// of fewer than k code words decomposes uniquely. Circular codes are
// k-circular for every k and yield KUnbounded. For a non-circular code the
// bound derives from the longest cycle of c edges: k = c/2 - 1 for even c,
// k = c - 1 for odd c.
func ExactKCircular(c *code.Code) uint32 {
	g, err := splitgraph.Build(c)
	if err != nil {
		return KUnbounded
	}
	cyclic, cycles := g.AllCycles()
	if !cyclic || len(cycles) == 0 {
		return KUnbounded
	}

	// Cycles are sorted ascending by length; the last one is the longest.
	n := uint32(len(cycles[len(cycles)-1]))
	if n%2 == 0 {
		return n/2 - 1
	}

	return n - 1
}

// IsCnCircular reports whether c and every rotation-by-one of it, up to the
// largest used word length, are circular. The caller's code is never
// mutated.
func IsCnCircular(c *code.Code) bool {
	lengths := c.TupleLengths()
	if len(lengths) == 0 {
		return false
	}
	rotated := c.Clone()
	for i := 1; i < lengths[len(lengths)-1]; i++ {
		rotated.Shift(1)
		if !IsCircular(rotated) {
			return false
		}
	}

	return IsCircular(c)
}

// longestPathLen reports whether the split graph of c is acyclic and its
// longest paths are at most limit edges long. A graph without any path
// (no edges at all) passes trivially.
func longestPathLen(c *code.Code, limit int) bool {
	g, err := splitgraph.Build(c)
	if err != nil {
		return false
	}
	longest, err := g.AllLongestPaths()
	if err != nil {
		return false
	}
	if len(longest) == 0 {
		return true
	}

	return len(longest[0]) <= limit
}
