// Package code defines the Code data model: a finite, duplicate-free set of
// words over a finite alphabet, the canonical starting point for all
// circular-code analysis in this module.
//
// What:
//
//   - Code: identifier, insertion-ordered word list, sorted tuple lengths,
//     sorted alphabet. Built once from a word list (FromWords) or from a
//     flat symbol sequence sliced into fixed-length tuples (FromSequence).
//   - Shift: in-place cyclic rotation of every word by a signed amount,
//     applied independently per word.
//   - Equal: set equality of the word lists, ignoring identifiers and
//     insertion order.
//
// Why:
//   - Every downstream engine (unique-decodability search, split graph,
//     property predicates) consumes a normalized Code value, so
//     deduplication and alphabet extraction happen exactly once.
//
// Errors:
//
//   - ErrEmptyCode  word list empty, or sequence empty/shorter than the
//     requested tuple length.
//   - ErrEmptyWord  a supplied word has zero length.
//
// Construction never panics; both constructors report failures as sentinel
// errors checkable with errors.Is.
package code
