package code_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/informatik-mannheim/gcatcirc/code"
)

// TestFromSequence_SlicesTuples verifies tuple slicing, alphabet and length
// extraction, and the default identifier.
func TestFromSequence_SlicesTuples(t *testing.T) {
	c, err := code.FromSequence("ABCCDE", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"AB", "CC", "DE"}, c.Words())
	assert.Equal(t, []int{2}, c.TupleLengths())
	assert.Equal(t, []rune{'A', 'B', 'C', 'D', 'E'}, c.Alphabet())
	assert.Equal(t, "unknown", c.ID)
}

// TestFromSequence_DropsRemainder verifies that a trailing remainder shorter
// than the tuple length is discarded.
func TestFromSequence_DropsRemainder(t *testing.T) {
	c, err := code.FromSequence("ABCCDEE", 3)
	require.NoError(t, err)

	// "E" at the end does not form a full tuple and is dropped.
	assert.Equal(t, []string{"ABC", "CDE"}, c.Words())
	assert.Equal(t, []int{3}, c.TupleLengths())
	assert.Equal(t, []rune{'A', 'B', 'C', 'D', 'E'}, c.Alphabet())
}

// TestFromSequence_Errors covers the ErrEmptyCode edge cases.
func TestFromSequence_Errors(t *testing.T) {
	_, err := code.FromSequence("", 3)
	assert.ErrorIs(t, err, code.ErrEmptyCode) // empty sequence

	_, err = code.FromSequence("AB", 3)
	assert.ErrorIs(t, err, code.ErrEmptyCode) // shorter than tuple length

	_, err = code.FromSequence("AB", 0)
	assert.ErrorIs(t, err, code.ErrEmptyCode) // non-positive tuple length
}

// TestFromWords_Normalizes verifies length/alphabet extraction and ordering.
func TestFromWords_Normalizes(t *testing.T) {
	c, err := code.FromWords([]string{"BDC", "CA", "DB"})
	require.NoError(t, err)

	assert.Equal(t, []string{"BDC", "CA", "DB"}, c.Words())
	assert.Equal(t, []int{2, 3}, c.TupleLengths())
	assert.Equal(t, []rune{'A', 'B', 'C', 'D'}, c.Alphabet())
	assert.Equal(t, "unknown", c.ID)
}

// TestFromWords_DedupKeepsFirst verifies global deduplication preserving the
// first occurrence of each word.
func TestFromWords_DedupKeepsFirst(t *testing.T) {
	c, err := code.FromWords([]string{"CA", "DB", "CA", "BDC", "DB"})
	require.NoError(t, err)

	assert.Equal(t, []string{"CA", "DB", "BDC"}, c.Words())
}

// TestFromWords_Errors covers empty input and empty words.
func TestFromWords_Errors(t *testing.T) {
	_, err := code.FromWords(nil)
	assert.ErrorIs(t, err, code.ErrEmptyCode)

	_, err = code.FromWords([]string{"BDC", "", "DB"})
	assert.ErrorIs(t, err, code.ErrEmptyWord)
	assert.False(t, errors.Is(err, code.ErrEmptyCode))
}

// TestWithID verifies the identifier option.
func TestWithID(t *testing.T) {
	c, err := code.FromWords([]string{"AB"}, code.WithID("X0"))
	require.NoError(t, err)
	assert.Equal(t, "X0", c.ID)

	c, err = code.FromWords([]string{"AB"}, code.WithID(""))
	require.NoError(t, err)
	assert.Equal(t, "unknown", c.ID) // empty id keeps the default
}

// TestShift walks the reference rotation scenarios, including negative
// amounts and per-word effective offsets for mixed tuple lengths.
func TestShift(t *testing.T) {
	c, err := code.FromWords([]string{"BDC", "CA", "DB"})
	require.NoError(t, err)

	c.Shift(-1)
	assert.Equal(t, []string{"CBD", "AC", "BD"}, c.Words())

	c.Shift(1)
	assert.Equal(t, []string{"BDC", "CA", "DB"}, c.Words())

	// Shifting by 3 is a no-op for 3-letter words but rotates 2-letter
	// words by one position.
	c.Shift(3)
	assert.Equal(t, []string{"BDC", "AC", "BD"}, c.Words())

	c.Shift(-4)
	assert.Equal(t, []string{"CBD", "AC", "BD"}, c.Words())
}

// TestShift_RoundTrip verifies Shift(s) followed by Shift(-s) restores the
// original word set for assorted amounts.
func TestShift_RoundTrip(t *testing.T) {
	original, err := code.FromWords([]string{"BDC", "CA", "DB", "ADDBA"})
	require.NoError(t, err)

	for _, s := range []int{-7, -1, 0, 1, 2, 3, 5, 12} {
		c := original.Clone()
		c.Shift(s)
		c.Shift(-s)
		assert.True(t, c.Equal(original), "round trip failed for shift %d", s)
	}
}

// TestEqual verifies set equality of word lists, independent of order and ID.
func TestEqual(t *testing.T) {
	a, err := code.FromWords([]string{"BDC", "CA", "DB"})
	require.NoError(t, err)
	b, err := code.FromWords([]string{"CA", "DB", "BDC"}, code.WithID("other"))
	require.NoError(t, err)
	c, err := code.FromWords([]string{"C", "DB", "BDC"})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, b.Equal(c))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

// TestClone verifies that clones are detached from the original.
func TestClone(t *testing.T) {
	a, err := code.FromWords([]string{"BDC", "CA"})
	require.NoError(t, err)

	b := a.Clone()
	b.Shift(1)
	assert.Equal(t, []string{"BDC", "CA"}, a.Words()) // original untouched
	assert.False(t, a.Equal(b))
}

// TestString verifies the display rendering.
func TestString(t *testing.T) {
	c, err := code.FromWords([]string{"AB", "BA"}, code.WithID("demo"))
	require.NoError(t, err)

	assert.Equal(t, "demo -> { AB, BA } Alphabet = [A, B]", c.String())
}
