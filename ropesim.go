package ropesim

import (
	"fmt"

	"github.com/katalvlaran/ropesim/motion"
	"github.com/katalvlaran/ropesim/rope"
)

// Result holds the tail visit counts of two independent runs over the same
// command list.
type Result struct {
	TwoKnots int // 2-knot chain
	TenKnots int // 10-knot chain (or the length passed to SolveWith)
}

// Solve runs cmds on a 2-knot and a 10-knot chain.
func Solve(cmds []motion.Command) (Result, error) {
	return SolveWith(cmds, 10)
}

// SolveWith runs cmds on a 2-knot chain and on a chain of the given length.
// opts are applied to both simulators.
// Returns rope.ErrInvalidConfiguration if knots < 2.
func SolveWith(cmds []motion.Command, knots int, opts ...rope.Option) (Result, error) {
	short, err := Count(cmds, 2, opts...)
	if err != nil {
		return Result{}, err
	}
	long, err := Count(cmds, knots, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{TwoKnots: short, TenKnots: long}, nil
}

// Count runs cmds on a fresh chain of the given length and returns the tail visit count.
func Count(cmds []motion.Command, knots int, opts ...rope.Option) (int, error) {
	sim, err := rope.New(knots, opts...)
	if err != nil {
		return 0, err
	}
	if err := sim.ApplyAll(cmds); err != nil {
		return 0, fmt.Errorf("ropesim: %d knots: %w", knots, err)
	}
	return sim.TailVisitCount(), nil
}
