package ropesim_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ropesim"
	"github.com/katalvlaran/ropesim/motion"
	"github.com/katalvlaran/ropesim/rope"
)

const larger = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
`

// TestSolve_Larger runs both chain lengths over the larger sample.
func TestSolve_Larger(t *testing.T) {
	cmds, err := motion.Parse(strings.NewReader(larger))
	require.NoError(t, err)
	res, err := ropesim.Solve(cmds)
	require.NoError(t, err)
	assert.Equal(t, 88, res.TwoKnots)
	assert.Equal(t, 36, res.TenKnots)
}

// TestSolveWith_Options passes a step hook to both runs and checks the
// reported tail counts end at the results.
func TestSolveWith_Options(t *testing.T) {
	cmds, err := motion.Parse(strings.NewReader(larger))
	require.NoError(t, err)

	last := map[int]int{}
	steps := map[int]int{}
	res, err := ropesim.SolveWith(cmds, 10, rope.WithStepHook(func(ev rope.StepEvent) {
		n := len(ev.Knots)
		require.GreaterOrEqual(t, ev.TailVisits, last[n], "tail count dropped")
		last[n] = ev.TailVisits
		steps[n]++
	}))
	require.NoError(t, err)
	assert.Equal(t, res.TwoKnots, last[2])
	assert.Equal(t, res.TenKnots, last[10])
	assert.Equal(t, 96, steps[2])
	assert.Equal(t, 96, steps[10])
}

// TestSolveWith_InvalidKnots surfaces the configuration error.
func TestSolveWith_InvalidKnots(t *testing.T) {
	_, err := ropesim.SolveWith(nil, 1)
	assert.ErrorIs(t, err, rope.ErrInvalidConfiguration)
}

// TestCount_InvalidCommand wraps the failing command.
func TestCount_InvalidCommand(t *testing.T) {
	_, err := ropesim.Count([]motion.Command{{}}, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, rope.ErrInvalidCommand)
	assert.Contains(t, err.Error(), "2 knots")
}
