package rope

import "github.com/katalvlaran/ropesim/grid"

// StepEvent describes the chain right after one unit step.
// Knots aliases the simulator's storage and is only valid during the hook call.
type StepEvent struct {
	Step   int            // 1-based count of unit steps applied so far
	Dir    grid.Direction // direction the head moved
	Offset grid.Offset    // coordinate shift applied before the move, if the grid grew Up/Left
	Knots  []grid.Position
	// TailVisits is TailVisitCount after this step.
	TailVisits int
}

// StepHook observes the simulator after every unit step.
type StepHook func(StepEvent)

// Option configures a Simulator at construction.
type Option func(*options)

type options struct {
	hook          StepHook
	interiorMarks bool
}

func defaultOptions() options {
	return options{interiorMarks: true}
}

// WithStepHook installs h to be called after every unit step.
func WithStepHook(h StepHook) Option {
	return func(o *options) { o.hook = h }
}

// WithInteriorMarks controls whether interior knots leave head marks on the
// grid. The marks only affect rendering; the tail count never depends on them.
// Enabled by default.
func WithInteriorMarks(enabled bool) Option {
	return func(o *options) { o.interiorMarks = enabled }
}
