// Package circular derives the circularity family of code properties from
// the split graph, rebuilding the graph from the (possibly rotated) code on
// every call.
//
// What:
//
//   - IsCircular: the split graph is acyclic, so every cyclically read
//     concatenation of code words keeps a unique decomposition.
//   - IsCommaFree / IsStrongCommaFree: progressively stricter members of
//     the circular family, measured by the length of the longest paths in
//     the split graph (at most 2 edges, exactly 1 edge).
//   - ExactKCircular: the exact k for which the code is k-circular,
//     derived from the longest cycle; KUnbounded for circular codes.
//   - IsCnCircular: every rotation-by-one of the code is itself circular.
//   - String views over the split graph (edges, vertices, cycle and
//     longest-path subgraphs, per-split-length components) for callers that
//     consume label lists rather than graph values.
//
// Error policy: a split graph that fails to construct from an already
// validated code cannot happen in practice; predicates fall back to a
// conservative default (false, or KUnbounded for ExactKCircular) and view
// functions return empty results instead of propagating the error.
package circular
