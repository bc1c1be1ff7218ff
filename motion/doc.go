// Package motion defines rope motion commands and reads them from text.
//
// Input format: one command per line, "<letter> <steps>", where letter is
// one of U, D, L, R and steps is a positive integer. Blank lines are skipped.
//
//	R 4
//	U 3
//	L 1
//
// Errors:
//
//   - ErrBadLine: a line is not exactly two space-separated fields.
//   - ErrBadDirection: the letter is not U, D, L or R.
//   - ErrBadSteps: the step count is not a positive integer.
//
// Parse wraps each of these in a *ParseError carrying the 1-based line number.
//
// RandomWalk produces reproducible pseudo-random command lists for property
// tests, benchmarks and demo runs.
package motion
