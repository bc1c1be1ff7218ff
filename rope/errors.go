package rope

import (
	"errors"

	"github.com/katalvlaran/ropesim/grid"
)

var (
	// ErrInvalidConfiguration indicates a knot count below two.
	ErrInvalidConfiguration = errors.New("rope: invalid configuration")
	// ErrInvalidCommand indicates a command with an unknown direction or non-positive steps.
	ErrInvalidCommand = errors.New("rope: invalid command")
	// ErrInvariantViolation is grid.ErrInvariantViolation, re-exported for callers
	// that only import rope. Matched via errors.Is.
	ErrInvariantViolation = grid.ErrInvariantViolation
)
