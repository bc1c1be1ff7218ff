// Package rope simulates a chain of N ≥ 2 knots dragged across an unbounded
// grid.Grid by its head, one unit step at a time.
//
// What:
//
//   - Knot 0 is the head and follows motion commands directly.
//   - Each knot i ≥ 1 follows knot i-1: if their Chebyshev distance exceeds 1
//     it steps one unit toward its leader on every axis where they differ
//     (diagonally when both axes differ).
//   - After each unit step every adjacent pair is within Chebyshev distance 1.
//   - The grid records the tail's visits; TailVisitCount is the number of
//     distinct cells the tail has occupied, including the starting cell.
//
// Grid growth toward Up/Left renumbers coordinates; the simulator applies the
// grid's Offset to every knot in the same step, so knots never alias.
//
// Complexity:
//
//   - Step: O(N) plus amortized grid growth.
//   - Apply: O(Steps·N).
//   - TailVisitCount: O(1).
//
// Errors:
//
//   - ErrInvalidConfiguration: fewer than two knots requested.
//   - ErrInvalidCommand: a command with an unknown direction or Steps ≤ 0.
//   - ErrInvariantViolation: an impossible follow delta or grid mark. These
//     are defects, not runtime conditions; the simulator state is undefined
//     afterwards and should be discarded.
//
// A Simulator is not safe for concurrent use; commands must be applied in order.
package rope
