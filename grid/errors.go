package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a position or reach that falls outside the grid.
	ErrOutOfRange = errors.New("grid: position out of range")
	// ErrUnknownDirection indicates a Direction value other than Up, Down, Left or Right.
	ErrUnknownDirection = errors.New("grid: unknown direction")
	// ErrInvariantViolation is matched by every *InvariantError.
	ErrInvariantViolation = errors.New("grid: invariant violation")
)

// InvariantError reports a state that legal operation can never produce.
// It is fatal: callers should abort the run rather than retry.
type InvariantError struct {
	Op     string // operation that detected the violation, e.g. "mark"
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("grid: invariant violation in %s: %s", e.Op, e.Detail)
}

// Unwrap lets errors.Is(err, ErrInvariantViolation) succeed.
func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }
