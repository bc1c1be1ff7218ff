package motion

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/ropesim/grid"
)

var directions = [...]grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}

// RandomWalk returns n commands with uniformly random directions and step
// counts in [1, maxSteps]. The same seed always yields the same walk.
// maxSteps below 1 is treated as 1.
func RandomWalk(seed uint64, n, maxSteps int) []Command {
	if maxSteps < 1 {
		maxSteps = 1
	}
	rng := rand.New(rand.NewSource(seed))
	cmds := make([]Command, n)
	for i := range cmds {
		cmds[i] = Command{
			Dir:   directions[rng.Intn(len(directions))],
			Steps: rng.Intn(maxSteps) + 1,
		}
	}
	return cmds
}
