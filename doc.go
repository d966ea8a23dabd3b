// Package gcatcirc analyzes codes over arbitrary alphabets: whether a set
// of words decodes uniquely, whether it is circular, comma free or
// strongly comma free, and how far an ambiguous circular reading can
// stretch.
//
// 🚀 What is gcatcirc?
//
//	A library for code theory over tuple codes, built from:
//		• code/       — the code model: words, tuple lengths, alphabet, rotation
//		• sardinas/   — unique decodability via pairwise boundary search
//		• splitgraph/ — the prefix/suffix split graph, its cycles and longest paths
//		• circular/   — the property layer: circular, comma free, exact k, Cn
//		• cmd/gcatcirc — CLI front end over all of the above
//
// ✨ Why gcatcirc?
//
//   - Exact semantics – canonical cycle rotation, stable orderings, sentinel k
//   - Small API – constructors return errors, predicates return booleans
//   - String views – edges as "prefix...suffix", paths as label chains
//
// Quick example:
//
//	c, err := code.FromWords([]string{"ABC", "DEF"})
//	if err != nil {
//		...
//	}
//	circular.IsCircular(c)      // true
//	circular.IsCommaFree(c)     // true
//	circular.ExactKCircular(c)  // circular.KUnbounded
//
// Start with code.FromWords or code.FromSequence, then hand the code to
// the sardinas, splitgraph or circular packages.
package gcatcirc
