package motion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ropesim/grid"
)

var (
	// ErrBadLine indicates a line that is not "<letter> <steps>".
	ErrBadLine = errors.New("motion: malformed line")
	// ErrBadDirection indicates a direction letter other than U, D, L, R.
	ErrBadDirection = errors.New("motion: invalid direction")
	// ErrBadSteps indicates a non-positive or unparsable step count.
	ErrBadSteps = errors.New("motion: invalid step count")
)

// ParseError reports where in the input a command failed to parse.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, trimmed
	Err  error  // one of ErrBadLine, ErrBadDirection, ErrBadSteps
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("motion: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Command moves the rope head Steps unit cells toward Dir.
type Command struct {
	Dir   grid.Direction
	Steps int
}

// Valid reports whether c has a known direction and a positive step count.
func (c Command) Valid() bool {
	return c.Dir.Valid() && c.Steps > 0
}

// String formats c in input form, e.g. "R 4".
func (c Command) String() string {
	return c.Dir.String() + " " + strconv.Itoa(c.Steps)
}

// ParseDirection maps an input letter to a grid.Direction.
func ParseDirection(s string) (grid.Direction, error) {
	switch s {
	case "U":
		return grid.Up, nil
	case "D":
		return grid.Down, nil
	case "L":
		return grid.Left, nil
	case "R":
		return grid.Right, nil
	}
	return 0, ErrBadDirection
}

// ParseLine parses a single "<letter> <steps>" command.
func ParseLine(s string) (Command, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Command{}, ErrBadLine
	}
	dir, err := ParseDirection(fields[0])
	if err != nil {
		return Command{}, err
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		return Command{}, ErrBadSteps
	}
	return Command{Dir: dir, Steps: n}, nil
}

// Parse reads every command from r in order. It stops at the first
// malformed line and returns a *ParseError for it.
// Complexity: O(len(input)).
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		cmd, err := ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("motion: read input: %w", err)
	}
	return cmds, nil
}
