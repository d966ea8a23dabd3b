// Package code: type declarations, sentinel errors, and construction options.
package code

import (
	"errors"
)

// DefaultID is assigned to codes constructed without WithID.
const DefaultID = "unknown"

var (
	// ErrEmptyCode indicates an empty word list, or a symbol sequence that is
	// empty or shorter than the requested tuple length.
	ErrEmptyCode = errors.New("code: empty code")

	// ErrEmptyWord indicates that a supplied word has zero length.
	ErrEmptyWord = errors.New("code: empty word")
)

// Code is a finite, duplicate-free set of words over a finite alphabet.
//
// Words keep their insertion order; tuple lengths and the alphabet are kept
// sorted and duplicate-free. The only mutation after construction is Shift.
type Code struct {
	// ID names the code; purely descriptive, never part of equality.
	ID string

	words        []string // insertion-ordered, duplicate-free
	tupleLengths []int    // sorted, unique word lengths in use
	alphabet     []rune   // sorted, unique symbols across all words
}

// Option configures a Code during construction.
// Use with FromWords or FromSequence.
type Option func(*Code)

// WithID returns an Option that assigns id as the code identifier.
// An empty id keeps the default ("unknown").
func WithID(id string) Option {
	return func(c *Code) {
		if id != "" {
			c.ID = id
		}
	}
}
