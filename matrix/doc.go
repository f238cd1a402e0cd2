// Package matrix provides a dense float64 matrix and the all-pairs shortest
// path closure (Floyd–Warshall) used to build distance tables from a
// core.Graph.
//
// Policy:
//   - +Inf marks "no path"; the diagonal of a distance matrix is 0.
//   - Indexers return ErrOutOfRange instead of panicking.
//   - Loop order in FloydWarshall is fixed (k → i → j) so results are
//     deterministic.
package matrix
