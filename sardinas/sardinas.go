// Package sardinas: the simultaneous-walk decodability search.
package sardinas

import (
	"github.com/informatik-mannheim/gcatcirc/code"
)

// rootSymbol prefixes every word row. Cursor comparisons are positional, so
// the synthetic symbol never collides with alphabet symbols in practice.
const rootSymbol = '_'

// cursor addresses one symbol of one word row: row 0 is the root-only row,
// row i > 0 holds word i-1 prefixed with rootSymbol.
type cursor struct {
	row int // word row index
	at  int // offset within the row
}

// cursorPair is a sorted pair of cursors, the unit of the cycle guard.
type cursorPair [2]cursor

// walker carries the word rows and the enumeration accumulator through one
// top-level search.
type walker struct {
	rows    [][]rune // rows[0] = {root}; rows[i] = root + word i-1
	findAll bool     // enumerate every branch instead of stopping early
	found   []string // witnessed ambiguous sequences (enumerate mode only)
}

// IsCode reports whether c is uniquely decodable. The search stops at the
// first ambiguous witness.
func IsCode(c *code.Code) bool {
	w := newWalker(c, false)

	return w.search()
}

// AmbiguousSequences explores every branch of every word pair and returns
// the overall verdict together with all witnessed ambiguous sequences.
// The verdict is true iff the sequence list is empty.
func AmbiguousSequences(c *code.Code) (bool, []string) {
	w := newWalker(c, true)
	ok := w.search()

	return ok, w.found
}

// newWalker lays out the word rows for one search.
func newWalker(c *code.Code, findAll bool) *walker {
	words := c.Words()
	rows := make([][]rune, 0, len(words)+1)
	rows = append(rows, []rune{rootSymbol})
	for _, word := range words {
		row := make([]rune, 0, len(word)+1)
		row = append(row, rootSymbol)
		row = append(row, []rune(word)...)
		rows = append(rows, row)
	}

	return &walker{rows: rows, findAll: findAll}
}

// search starts one walk per unordered pair of distinct word rows.
// Returns false as soon as any pair is ambiguous (decide mode), or after
// exhausting all pairs (enumerate mode).
func (w *walker) search() bool {
	isCode := true
	for i := 1; i < len(w.rows)-1; i++ {
		for j := i + 1; j < len(w.rows); j++ {
			if !w.walk(cursor{i, 0}, cursor{j, 0}, nil, nil) {
				if !w.findAll {
					return false
				}
				isCode = false
			}
		}
	}

	return isCode
}

// walk advances two cursors in lockstep. Returns true if this branch can
// never produce an ambiguous sequence, false if one was witnessed.
//
// history holds every (sorted) cursor pair visited on the current branch;
// prefix holds the symbols matched so far. Both are copied before being
// handed to child branches so each branch's effect stays local.
func (w *walker) walk(p0, p1 cursor, history []cursorPair, prefix []rune) bool {
	// 1. Cycle guard: a repeated cursor pair can make no further progress,
	//    so no finite ambiguous witness exists along this branch.
	key := orderPair(p0, p1)
	for _, seen := range history {
		if seen == key {
			return true
		}
	}
	history = append(history, key)

	// 2. Boundary branching: a cursor at the root position or at the last
	//    position of its row marks a point where a new word may start.
	//    Restart that cursor at every word row, keeping the other fixed.
	for _, side := range [2][2]cursor{{p0, p1}, {p1, p0}} {
		bound, other := side[0], side[1]
		if (bound == cursor{}) || bound.at == len(w.rows[bound.row])-1 {
			isCode := true
			for k := 1; k < len(w.rows); k++ {
				if !w.walk(cursor{k, 0}, other, clonePairs(history), cloneRunes(prefix)) {
					if !w.findAll {
						return false
					}
					isCode = false
				}
			}

			return isCode
		}
	}

	// 3. Advance both cursors one symbol; diverging symbols resolve the
	//    branch as unambiguous.
	p0.at++
	p1.at++
	if w.rows[p0.row][p0.at] != w.rows[p1.row][p1.at] {
		return true
	}

	// 4. Matching symbols extend the shared sequence. Both cursors
	//    finishing their rows on the same symbol witness two distinct
	//    decompositions of that sequence.
	prefix = append(prefix, w.rows[p0.row][p0.at])
	if p0.at == len(w.rows[p0.row])-1 && p1.at == len(w.rows[p1.row])-1 {
		if w.findAll {
			w.found = append(w.found, string(prefix))
		}

		return false
	}

	// 5. Continue the lockstep walk from the advanced pair.
	return w.walk(p0, p1, history, prefix)
}

// orderPair returns the pair sorted by (row, at) so that the cycle guard is
// insensitive to cursor order.
func orderPair(a, b cursor) cursorPair {
	if b.row < a.row || (b.row == a.row && b.at < a.at) {
		return cursorPair{b, a}
	}

	return cursorPair{a, b}
}

func clonePairs(h []cursorPair) []cursorPair {
	out := make([]cursorPair, len(h))
	copy(out, h)

	return out
}

func cloneRunes(r []rune) []rune {
	out := make([]rune, len(r))
	copy(out, r)

	return out
}
