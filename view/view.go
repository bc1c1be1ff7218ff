package view

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/ropesim/grid"
	"github.com/katalvlaran/ropesim/motion"
	"github.com/katalvlaran/ropesim/rope"
)

// Styles selects the tcell style of each cell state and of the knots.
type Styles struct {
	Empty  tcell.Style
	Head   tcell.Style // cell visited by the head only
	Tail   tcell.Style // cell visited by the tail only
	Both   tcell.Style
	Knot   tcell.Style // head, tail and interior knot symbols
	Status tcell.Style
}

// DefaultStyles returns a palette readable on dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Empty:  tcell.StyleDefault,
		Head:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		Tail:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Both:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Knot:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		Status: tcell.StyleDefault.Reverse(true),
	}
}

func (st Styles) cell(c grid.Cell) tcell.Style {
	switch c {
	case grid.VisitedByHead:
		return st.Head
	case grid.VisitedByTail:
		return st.Tail
	case grid.VisitedByBoth:
		return st.Both
	}
	return st.Empty
}

// Viewport returns the grid coordinate drawn at the screen's top-left corner
// so that focus stays visible. When the grid fits along an axis the origin
// on that axis is 0.
func Viewport(gridW, gridH, screenW, screenH int, focus grid.Position) grid.Position {
	return grid.Position{
		X: axisOrigin(gridW, screenW, focus.X),
		Y: axisOrigin(gridH, screenH, focus.Y),
	}
}

func axisOrigin(size, room, focus int) int {
	if size <= room || room <= 0 {
		return 0
	}
	o := focus - room/2
	if o < 0 {
		o = 0
	}
	if o > size-room {
		o = size - room
	}
	return o
}

// Draw paints sim onto screen without calling Show.
func Draw(screen tcell.Screen, sim *rope.Simulator, st Styles) {
	screen.Clear()
	w, h := screen.Size()
	if h < 1 {
		return
	}
	g := sim.Grid()
	origin := Viewport(g.Width(), g.Height(), w, h-1, sim.Head())

	knots := sim.Knots()
	labels := make(map[grid.Position]rune, len(knots))
	for i := len(knots) - 1; i >= 0; i-- {
		labels[knots[i]] = rope.Label(i, len(knots))
	}

	for sy := 0; sy < h-1; sy++ {
		for sx := 0; sx < w; sx++ {
			p := grid.Position{X: origin.X + sx, Y: origin.Y + sy}
			c, err := g.At(p)
			if err != nil {
				continue
			}
			if r, ok := labels[p]; ok {
				screen.SetContent(sx, sy, r, nil, st.Knot)
				continue
			}
			screen.SetContent(sx, sy, c.Rune(), nil, st.cell(c))
		}
	}

	status := fmt.Sprintf(" knots=%d steps=%d tail=%d grid=%dx%d ",
		sim.Len(), sim.Steps(), sim.TailVisitCount(), g.Width(), g.Height())
	drawText(screen, 0, h-1, status, st.Status)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Watch applies cmds to sim one unit step at a time, redrawing screen with st
// after each step and pausing for delay between frames. It returns ctx.Err()
// if ctx is cancelled, or the first simulation error.
func Watch(ctx context.Context, screen tcell.Screen, sim *rope.Simulator, cmds []motion.Command, st Styles, delay time.Duration) error {
	Draw(screen, sim, st)
	screen.Show()

	var tick *time.Ticker
	if delay > 0 {
		tick = time.NewTicker(delay)
		defer tick.Stop()
	}
	for i, cmd := range cmds {
		if !cmd.Valid() {
			return fmt.Errorf("view: command %d: %w", i, rope.ErrInvalidCommand)
		}
		for n := 0; n < cmd.Steps; n++ {
			if tick != nil {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-tick.C:
				}
			} else if err := ctx.Err(); err != nil {
				return err
			}
			if err := sim.Step(cmd.Dir); err != nil {
				return fmt.Errorf("view: command %d (%s): %w", i, cmd, err)
			}
			Draw(screen, sim, st)
			screen.Show()
		}
	}
	return nil
}
