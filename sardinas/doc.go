// Package sardinas decides unique decodability of a word set by a pairwise
// simultaneous-walk search in the spirit of the Sardinas-Patterson procedure.
//
// What:
//
//   - IsCode(c): true iff every concatenation of words from c has at most
//     one decomposition back into words of c.
//   - AmbiguousSequences(c): the same verdict, plus every witnessed symbol
//     sequence carrying two distinct decompositions (the list may contain
//     repeats when the same sequence is reached along several branches).
//
// How:
//
//	Each word, prefixed with a synthetic root symbol, forms one row of an
//	implicit graph; each pair of distinct rows is walked by two cursors that
//	advance in lockstep over matching symbols. Whenever a cursor sits at a
//	word boundary, the search branches over every word that could start
//	there. Two cursors finishing their words on the same symbol witness an
//	ambiguous sequence. A history of visited cursor pairs bounds each branch,
//	so the recursion always terminates.
//
// Complexity:
//
//	Exponential in the worst case (the search branches over all words at
//	every boundary); the history guard caps each branch at the number of
//	distinct cursor-position pairs. Callers needing bounded latency must cap
//	their input size.
package sardinas
