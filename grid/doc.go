// Package grid provides an unbounded 2D cell store that grows on demand
// in any of the four directions and records which end of a rope visited
// each cell.
//
// What:
//
//   - Grid starts as a single Empty cell and grows one row/column at a time.
//   - Growth toward Up or Left prepends storage; the returned Offset must be
//     applied to every coordinate the caller holds, because all existing
//     cells are renumbered.
//   - Growth toward Down or Right appends storage and never renumbers.
//   - Cells follow a monotonic visit lattice: Empty → {Head, Tail} → Both.
//
// Why:
//
//   - Rope and snake simulations whose reachable area is unknown up front.
//   - Trail bookkeeping where the answer is "how many distinct cells".
//
// Complexity:
//
//   - EnsureCapacity: O(k·H) when k columns are added, O(k·W) for k rows.
//     Each prepend/append is O(1) amortized thanks to Deque.
//   - Mark, At, CountTailVisited: O(1).
//   - Rows: O(W·H) per full iteration, lazily per row.
//
// Errors:
//
//   - ErrOutOfRange: a position or reach is outside the grid.
//   - ErrUnknownDirection: a Direction outside Up/Down/Left/Right.
//   - ErrInvariantViolation (via *InvariantError): MarkBoth or an unknown
//     Mark was passed to Mark; this is a programming defect upstream.
//
// A Grid is not safe for concurrent use.
package grid
