package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is an unbounded 2D store of Cell values. Rows are a Deque of
// row Deques, so both axes grow at either end without copying the whole grid.
type Grid struct {
	rows      *Deque[*Deque[Cell]]
	width     int
	tailCells int // running count of cells with TailVisited()
}

// New returns a 1×1 grid holding a single Empty cell at (0,0).
func New() *Grid {
	row := NewDeque[Cell](minDequeCap)
	row.PushBack(Empty)
	rows := NewDeque[*Deque[Cell]](minDequeCap)
	rows.PushBack(row)
	return &Grid{rows: rows, width: 1}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.rows.Len() }

// InBounds reports whether p lies within the current frame.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.rows.Len()
}

// At returns the cell at p, or ErrOutOfRange.
func (g *Grid) At(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Empty, ErrOutOfRange
	}
	return g.rows.At(p.Y).At(p.X), nil
}

// EnsureCapacity grows the grid so that from moved reach cells toward dir
// lies inside it. It adds exactly the missing rows or columns and nothing more.
//
// When growth happens toward Up or Left, every existing cell is renumbered
// and the returned Offset must be applied to every Position the caller holds
// (including from). Growth toward Down or Right returns a zero Offset.
//
// Returns ErrOutOfRange if from is outside the grid or reach is negative,
// ErrUnknownDirection for an invalid dir.
// Complexity: O(k·W) or O(k·H) for k added rows or columns.
func (g *Grid) EnsureCapacity(from Position, dir Direction, reach int) (Offset, error) {
	if !g.InBounds(from) || reach < 0 {
		return Offset{}, ErrOutOfRange
	}
	var off Offset
	switch dir {
	case Up:
		if need := reach - from.Y; need > 0 {
			for i := 0; i < need; i++ {
				g.rows.PushFront(g.emptyRow())
			}
			off.DY = need
		}
	case Down:
		if need := from.Y + reach - (g.rows.Len() - 1); need > 0 {
			for i := 0; i < need; i++ {
				g.rows.PushBack(g.emptyRow())
			}
		}
	case Left:
		if need := reach - from.X; need > 0 {
			for _, row := range g.rows.All() {
				for i := 0; i < need; i++ {
					row.PushFront(Empty)
				}
			}
			g.width += need
			off.DX = need
		}
	case Right:
		if need := from.X + reach - (g.width - 1); need > 0 {
			for _, row := range g.rows.All() {
				for i := 0; i < need; i++ {
					row.PushBack(Empty)
				}
			}
			g.width += need
		}
	default:
		return Offset{}, ErrUnknownDirection
	}
	return off, nil
}

// Mark records a visit by one rope end at p following the visit lattice:
// repeating a visit is a no-op and a visit by the other end upgrades the
// cell to VisitedByBoth. Cells never downgrade.
//
// Only MarkHead and MarkTail are accepted; anything else, MarkBoth included,
// returns an *InvariantError. Returns ErrOutOfRange for p outside the grid.
// Complexity: O(1).
func (g *Grid) Mark(p Position, end Mark) error {
	if end != MarkHead && end != MarkTail {
		return &InvariantError{
			Op:     "mark",
			Detail: fmt.Sprintf("mark %d at (%d,%d) is not a single rope end", end, p.X, p.Y),
		}
	}
	if !g.InBounds(p) {
		return ErrOutOfRange
	}
	row := g.rows.At(p.Y)
	old := row.At(p.X)
	next := old | Cell(end)
	if next == old {
		return nil
	}
	if !old.TailVisited() && next.TailVisited() {
		g.tailCells++
	}
	row.Set(p.X, next)
	return nil
}

// CountTailVisited returns the number of cells in state VisitedByTail or
// VisitedByBoth. The count is maintained by Mark.
// Complexity: O(1).
func (g *Grid) CountTailVisited() int {
	return g.tailCells
}

// Rows lazily renders the grid, one string per row from top to bottom.
// overlay, if non-nil, may replace the symbol of any cell (used to draw knots).
// Complexity: O(W) per yielded row.
func (g *Grid) Rows(overlay func(Position) (rune, bool)) iter.Seq[string] {
	return func(yield func(string) bool) {
		var sb strings.Builder
		for y, row := range g.rows.All() {
			sb.Reset()
			sb.Grow(g.width)
			for x, c := range row.All() {
				if overlay != nil {
					if r, ok := overlay(Position{X: x, Y: y}); ok {
						sb.WriteRune(r)
						continue
					}
				}
				sb.WriteRune(c.Rune())
			}
			if !yield(sb.String()) {
				return
			}
		}
	}
}

func (g *Grid) emptyRow() *Deque[Cell] {
	row := NewDeque[Cell](g.width)
	for i := 0; i < g.width; i++ {
		row.PushBack(Empty)
	}
	return row
}
