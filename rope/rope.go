package rope

import (
	"fmt"

	"github.com/katalvlaran/ropesim/grid"
	"github.com/katalvlaran/ropesim/motion"
)

// Simulator owns a knot chain anchored in a grid.Grid.
type Simulator struct {
	grid  *grid.Grid
	knots []grid.Position // knots[0] is the head, knots[len-1] the tail
	steps int
	opts  options
}

// New returns a Simulator whose knots all sit on the single starting cell
// of a fresh grid. The starting cell counts as visited by both ends.
// Returns ErrInvalidConfiguration if knots < 2.
func New(knots int, opts ...Option) (*Simulator, error) {
	if knots < 2 {
		return nil, fmt.Errorf("%w: need at least 2 knots, got %d", ErrInvalidConfiguration, knots)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Simulator{
		grid:  grid.New(),
		knots: make([]grid.Position, knots),
		opts:  o,
	}
	if err := s.grid.Mark(s.knots[0], grid.MarkHead); err != nil {
		return nil, err
	}
	if err := s.grid.Mark(s.knots[knots-1], grid.MarkTail); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of knots.
func (s *Simulator) Len() int { return len(s.knots) }

// Head returns the head position in the grid's current frame.
func (s *Simulator) Head() grid.Position { return s.knots[0] }

// Tail returns the tail position in the grid's current frame.
func (s *Simulator) Tail() grid.Position { return s.knots[len(s.knots)-1] }

// Knots returns a copy of all knot positions, head first.
func (s *Simulator) Knots() []grid.Position {
	out := make([]grid.Position, len(s.knots))
	copy(out, s.knots)
	return out
}

// Steps returns the number of unit steps applied so far.
func (s *Simulator) Steps() int { return s.steps }

// Grid exposes the underlying grid for rendering. Callers must not mark it.
func (s *Simulator) Grid() *grid.Grid { return s.grid }

// TailVisitCount returns how many distinct cells the tail has occupied.
// Complexity: O(1).
func (s *Simulator) TailVisitCount() int { return s.grid.CountTailVisited() }

// Apply moves the head cmd.Steps unit steps toward cmd.Dir, letting the
// rest of the chain follow after every step.
// Returns ErrInvalidCommand for an invalid cmd, or the first error of Step.
func (s *Simulator) Apply(cmd motion.Command) error {
	if !cmd.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.String())
	}
	for i := 0; i < cmd.Steps; i++ {
		if err := s.Step(cmd.Dir); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies cmds in order and stops at the first failure.
// The returned error names the index of the failing command.
func (s *Simulator) ApplyAll(cmds []motion.Command) error {
	for i, cmd := range cmds {
		if err := s.Apply(cmd); err != nil {
			return fmt.Errorf("rope: command %d (%s): %w", i, cmd, err)
		}
	}
	return nil
}

// Step moves the head one unit toward dir and propagates the follow rule
// down the chain.
//
// Behavior:
//  1. Grow the grid so the head's next cell exists; shift every knot by the
//     resulting offset.
//  2. Move the head and mark its cell.
//  3. For each knot i ≥ 1, follow knot i-1 and mark the knot's cell
//     (tail mark for the last knot, head mark for interior knots).
//     Once a knot stays put, the rest of the chain cannot move either.
//  4. Notify the step hook.
func (s *Simulator) Step(dir grid.Direction) error {
	off, err := s.grid.EnsureCapacity(s.knots[0], dir, 1)
	if err != nil {
		return fmt.Errorf("rope: step %s: %w", dir, err)
	}
	off.Apply(s.knots)

	s.knots[0] = s.knots[0].Move(dir, 1)
	if err = s.grid.Mark(s.knots[0], grid.MarkHead); err != nil {
		return err
	}

	last := len(s.knots) - 1
	for i := 1; i <= last; i++ {
		next, err := follow(s.knots[i-1], s.knots[i], i == 1)
		if err != nil {
			return err
		}
		if next == s.knots[i] {
			break
		}
		s.knots[i] = next
		switch {
		case i == last:
			err = s.grid.Mark(next, grid.MarkTail)
		case s.opts.interiorMarks:
			err = s.grid.Mark(next, grid.MarkHead)
		}
		if err != nil {
			return err
		}
	}

	s.steps++
	if s.opts.hook != nil {
		s.opts.hook(StepEvent{
			Step:       s.steps,
			Dir:        dir,
			Offset:     off,
			Knots:      s.knots,
			TailVisits: s.grid.CountTailVisited(),
		})
	}
	return nil
}

// follow returns where knot k ends up after its leader moved.
//
// Legal per-axis gaps are 0, 1 or 2. Both axes at 2 only arise when the
// leader itself moved diagonally, which the head never does, so it is
// rejected when the leader is the head.
func follow(leader, k grid.Position, leaderIsHead bool) (grid.Position, error) {
	dx, dy := leader.X-k.X, leader.Y-k.Y
	ax, ay := abs(dx), abs(dy)
	if ax > 2 || ay > 2 || (leaderIsHead && ax == 2 && ay == 2) {
		return k, &grid.InvariantError{
			Op:     "follow",
			Detail: fmt.Sprintf("knot at (%d,%d) is (%d,%d) away from its leader", k.X, k.Y, dx, dy),
		}
	}
	if ax <= 1 && ay <= 1 {
		return k, nil
	}
	return grid.Position{X: k.X + sign(dx), Y: k.Y + sign(dy)}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
