// Package centrality implements eigenvector-style node centralities for
// uniform, connected hypergraphs.
//
// What
//
//   - CEC: clique-eigenvector centrality. Builds the symmetric co-occurrence
//     matrix of the clique expansion (W[i][j] = number of edges holding both
//     i and j, no self terms) and runs power iteration from the uniform unit
//     vector.
//   - ZEC: Z-eigenvector centrality. Starting from a seeded random positive
//     vector of unit L1 norm, every edge adds the product of its members'
//     values to each member; the result is rescaled by the sign of its first
//     coordinate and its L1 norm.
//   - HEC: H-eigenvector centrality. Every member of every edge accumulates
//     the product of the other members' values; entries are raised to the
//     power 1/(m-1), m being the common edge size, and rescaled to unit
//     Euclidean norm.
//
// Convergence
//
//	All three methods share one policy. Iteration stops when the distance
//	between successive iterates (L2 for CEC and HEC, L1 for ZEC) drops to the
//	tolerance or after MaxIter steps. The returned Result always carries the
//	last iterate with Converged and Iterations filled in; when the budget runs
//	out the error wraps ErrNotConverged as well, so callers may either fail
//	hard or inspect the best-effort scores.
//
// Preconditions
//
//	Every method checks, in order: the store is uniform (ErrNotUniform), its
//	edges have at least two members (ErrTrivialOrder), and it is connected
//	(ErrDisconnected). No iteration runs when a check fails. Members dropped
//	with RemoveNode(n, true) are ignored.
//
// Options
//
//   - WithTolerance(tol):  stop threshold, > 0 (default 1e-6).
//   - WithMaxIter(n):      iteration budget, >= 1 (default 1000).
//   - WithSeed(s):         ZEC start vector seed; 0 selects the default (1).
//   - WithContext(ctx):    cancellation, checked once per iteration.
//   - WithLogger(l):       slog logger for iteration summaries.
//
// Complexity (V nodes, E edges of size m, K iterations)
//
//   - CEC: O(E·m² + K·V²) time, O(V²) memory.
//   - ZEC: O(K·E·m) time, O(V) memory.
//   - HEC: O(K·E·m²) time, O(V) memory.
package centrality
