// Package code: constructors and value operations on Code.
package code

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// FromWords builds a Code from an ordered collection of words.
// Duplicate words are dropped, keeping the first occurrence; tuple lengths
// and the alphabet are collected sorted and duplicate-free.
// Returns ErrEmptyCode if words is empty, ErrEmptyWord if any word has zero
// length.
// Complexity: O(W·L + A·log A) for W words of max length L, alphabet size A.
func FromWords(words []string, opts ...Option) (*Code, error) {
	// 1. Validate the word list as a whole.
	if len(words) == 0 {
		return nil, ErrEmptyCode
	}

	// 2. Deduplicate while preserving insertion order, collecting lengths
	//    and alphabet symbols along the way.
	seen := make(map[string]struct{}, len(words))
	kept := make([]string, 0, len(words))
	lengths := treeset.NewWithIntComparator()
	alphabet := treeset.NewWith(utils.RuneComparator)
	for _, w := range words {
		runes := []rune(w)
		if len(runes) == 0 {
			return nil, ErrEmptyWord
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		kept = append(kept, w)
		lengths.Add(len(runes))
		for _, r := range runes {
			alphabet.Add(r)
		}
	}

	// 3. Assemble the Code and apply options.
	c := &Code{
		ID:           DefaultID,
		words:        kept,
		tupleLengths: intValues(lengths),
		alphabet:     runeValues(alphabet),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FromSequence builds a Code by slicing seq into consecutive non-overlapping
// tuples of tupleLength symbols. A trailing remainder shorter than
// tupleLength is dropped. Returns ErrEmptyCode if the sequence is empty,
// tupleLength is not positive, or the sequence is shorter than tupleLength.
// Complexity: O(len(seq)).
func FromSequence(seq string, tupleLength int, opts ...Option) (*Code, error) {
	// 1. Validate sequence and tuple length.
	runes := []rune(seq)
	if len(runes) == 0 || tupleLength < 1 || tupleLength > len(runes) {
		return nil, ErrEmptyCode
	}

	// 2. Slice into tuples, dropping the incomplete tail.
	words := make([]string, 0, len(runes)/tupleLength)
	for i := tupleLength; i <= len(runes); i += tupleLength {
		words = append(words, string(runes[i-tupleLength:i]))
	}

	// 3. Delegate normalization to FromWords; every tuple is non-empty, so
	//    only ErrEmptyCode could surface, and it cannot (words is non-empty).
	return FromWords(words, opts...)
}

// Words returns a copy of the insertion-ordered, duplicate-free word list.
func (c *Code) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)

	return out
}

// TupleLengths returns a copy of the sorted, unique word lengths in use.
func (c *Code) TupleLengths() []int {
	out := make([]int, len(c.tupleLengths))
	copy(out, c.tupleLengths)

	return out
}

// Alphabet returns a copy of the sorted, unique symbols across all words.
func (c *Code) Alphabet() []rune {
	out := make([]rune, len(c.alphabet))
	copy(out, c.alphabet)

	return out
}

// Shift rotates every word independently by amount positions, in place.
// For a word of length L the effective offset is ((L + amount mod L) mod L),
// so words of different lengths rotate by different effective offsets.
// Shifting by L (or any multiple) is a no-op, and Shift(amount) followed by
// Shift(-amount) restores the original words.
func (c *Code) Shift(amount int) {
	for i, w := range c.words {
		runes := []rune(w)
		n := len(runes)
		// Effective offset into [0, n); handles negative amounts.
		off := (n + amount%n) % n
		c.words[i] = string(runes[off:]) + string(runes[:off])
	}
}

// Clone returns a deep copy of the code.
func (c *Code) Clone() *Code {
	clone := &Code{
		ID:           c.ID,
		words:        make([]string, len(c.words)),
		tupleLengths: make([]int, len(c.tupleLengths)),
		alphabet:     make([]rune, len(c.alphabet)),
	}
	copy(clone.words, c.words)
	copy(clone.tupleLengths, c.tupleLengths)
	copy(clone.alphabet, c.alphabet)

	return clone
}

// Equal reports whether c and other contain the same set of words.
// Identifiers and insertion order are ignored.
func (c *Code) Equal(other *Code) bool {
	if other == nil || len(c.words) != len(other.words) {
		return false
	}
	a := c.Words()
	b := other.Words()
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String renders the code as `id -> { w1, w2 } Alphabet = [a, b]`.
func (c *Code) String() string {
	symbols := make([]string, len(c.alphabet))
	for i, r := range c.alphabet {
		symbols[i] = string(r)
	}

	return fmt.Sprintf("%s -> { %s } Alphabet = [%s]",
		c.ID, strings.Join(c.words, ", "), strings.Join(symbols, ", "))
}

// intValues drains a treeset of ints into a sorted slice.
func intValues(s *treeset.Set) []int {
	out := make([]int, 0, s.Size())
	for _, v := range s.Values() {
		out = append(out, v.(int))
	}

	return out
}

// runeValues drains a treeset of runes into a sorted slice.
func runeValues(s *treeset.Set) []rune {
	out := make([]rune, 0, s.Size())
	for _, v := range s.Values() {
		out = append(out, v.(rune))
	}

	return out
}
