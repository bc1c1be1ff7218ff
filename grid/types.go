package grid

// Direction is one of the four axis-aligned unit moves.
// The zero value is not a valid direction.
type Direction int

const (
	// Up decreases Y.
	Up Direction = iota + 1
	// Down increases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right
)

// Valid reports whether d is one of Up, Down, Left, Right.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Delta returns the unit vector of d. Invalid directions yield (0,0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// String returns the single-letter form used in motion input ("U", "D", "L", "R").
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}

// Position addresses a cell in the grid's current frame.
// Coordinates are renumbered whenever the grid grows toward Up or Left.
type Position struct {
	X, Y int
}

// Move returns p moved n cells toward d.
func (p Position) Move(d Direction, n int) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx*n, Y: p.Y + dy*n}
}

// Chebyshev returns max(|dx|, |dy|) between p and q.
func (p Position) Chebyshev(q Position) int {
	dx, dy := abs(q.X-p.X), abs(q.Y-p.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Offset is the coordinate shift produced by growth toward Up or Left.
// Every Position held outside the grid must be shifted by it.
type Offset struct {
	DX, DY int
}

// IsZero reports whether o leaves coordinates unchanged.
func (o Offset) IsZero() bool { return o.DX == 0 && o.DY == 0 }

// Shift returns p translated into the grown frame.
func (o Offset) Shift(p Position) Position {
	return Position{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Apply shifts every position in ps in place.
func (o Offset) Apply(ps []Position) {
	if o.IsZero() {
		return
	}
	for i := range ps {
		ps[i] = o.Shift(ps[i])
	}
}

// Cell is the visit state of one grid cell. The values form a lattice
// where VisitedByBoth = VisitedByHead | VisitedByTail.
type Cell uint8

const (
	// Empty is a cell no rope end has visited.
	Empty Cell = 0
	// VisitedByHead is a cell visited by the head (or an interior knot).
	VisitedByHead Cell = 1 << 0
	// VisitedByTail is a cell visited by the tail.
	VisitedByTail Cell = 1 << 1
	// VisitedByBoth is a cell visited by both ends.
	VisitedByBoth = VisitedByHead | VisitedByTail
)

// TailVisited reports whether the tail has been on this cell.
func (c Cell) TailVisited() bool { return c&VisitedByTail != 0 }

// Rune returns the debug symbol of c: ' ', '.', ',' or ';'.
func (c Cell) Rune() rune {
	switch c {
	case VisitedByHead:
		return '.'
	case VisitedByTail:
		return ','
	case VisitedByBoth:
		return ';'
	}
	return ' '
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case VisitedByHead:
		return "VisitedByHead"
	case VisitedByTail:
		return "VisitedByTail"
	case VisitedByBoth:
		return "VisitedByBoth"
	}
	return "Cell(?)"
}

// Mark names the rope end leaving a trace on a cell.
// Only MarkHead and MarkTail may be passed to Grid.Mark.
type Mark uint8

const (
	// MarkHead records a head (or interior knot) visit.
	MarkHead = Mark(VisitedByHead)
	// MarkTail records a tail visit.
	MarkTail = Mark(VisitedByTail)
	// MarkBoth exists only as the join of the two; marking it directly is an invariant violation.
	MarkBoth = Mark(VisitedByBoth)
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
