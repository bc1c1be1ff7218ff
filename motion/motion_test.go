package motion_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ropesim/grid"
	"github.com/katalvlaran/ropesim/motion"
)

// TestParse_Sample parses the short sample input with a trailing blank line.
func TestParse_Sample(t *testing.T) {
	in := "R 4\nU 3\nL 1\nD 1\n\nR 4\n"
	cmds, err := motion.Parse(strings.NewReader(in))
	require.NoError(t, err)
	want := []motion.Command{
		{Dir: grid.Right, Steps: 4},
		{Dir: grid.Up, Steps: 3},
		{Dir: grid.Left, Steps: 1},
		{Dir: grid.Down, Steps: 1},
		{Dir: grid.Right, Steps: 4},
	}
	assert.Equal(t, want, cmds)
}

// TestParse_Empty returns no commands and no error.
func TestParse_Empty(t *testing.T) {
	cmds, err := motion.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

// TestParse_Errors checks each failure is reported with its line number.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
		err  error
	}{
		{"BadLetter", "R 1\nX 2\n", 2, motion.ErrBadDirection},
		{"Lowercase", "u 2", 1, motion.ErrBadDirection},
		{"ZeroSteps", "R 1\n\nL 0", 3, motion.ErrBadSteps},
		{"NegativeSteps", "D -3", 1, motion.ErrBadSteps},
		{"NotANumber", "D x", 1, motion.ErrBadSteps},
		{"MissingSteps", "U", 1, motion.ErrBadLine},
		{"ExtraField", "U 1 2", 1, motion.ErrBadLine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := motion.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			var pe *motion.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

// TestCommand_String round-trips through ParseLine.
func TestCommand_String(t *testing.T) {
	for _, s := range []string{"U 1", "D 12", "L 3", "R 40"} {
		cmd, err := motion.ParseLine(s)
		require.NoError(t, err)
		assert.True(t, cmd.Valid())
		assert.Equal(t, s, cmd.String())
	}
	assert.False(t, motion.Command{}.Valid())
	assert.False(t, motion.Command{Dir: grid.Up}.Valid())
}

// TestRandomWalk verifies determinism and value ranges.
func TestRandomWalk(t *testing.T) {
	a := motion.RandomWalk(7, 200, 5)
	b := motion.RandomWalk(7, 200, 5)
	require.Len(t, a, 200)
	assert.Equal(t, a, b, "same seed must give the same walk")

	seen := map[grid.Direction]bool{}
	for _, c := range a {
		require.True(t, c.Valid(), "command %v", c)
		assert.LessOrEqual(t, c.Steps, 5)
		seen[c.Dir] = true
	}
	assert.Len(t, seen, 4, "200 commands should use every direction")

	for _, c := range motion.RandomWalk(1, 10, 0) {
		assert.Equal(t, 1, c.Steps)
	}
}
