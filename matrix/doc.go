// Package matrix provides a small, generic, row-major dense grid.
//
// Dense[T] stores r×c cells in one flat slice. Alignment code keeps its
// integer score table and its per-cell move flags in two Dense values of
// identical shape, filled together in a single row-major pass.
//
// Shapes may be empty (0×k, k×0, 0×0): an alignment against an empty
// sequence still owns a well-formed, zero-cell table.
//
// Complexity:
//
//   - NewDense, Clone, String: O(r·c)
//   - At, Set, Rows, Cols:     O(1)
package matrix
