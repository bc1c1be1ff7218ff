// Command ropesim reads motion commands and prints how many distinct cells
// the tail of a 2-knot and of an N-knot rope visits.
//
// Usage:
//
//	ropesim [flags] <input>
//	ropesim -random 500 [-seed 7] [-max 9]
//	ropesim -watch -knots 10 <input>
//
// Both counts are printed in every mode. With -watch only the long rope is
// animated.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/ropesim"
	"github.com/katalvlaran/ropesim/motion"
	"github.com/katalvlaran/ropesim/rope"
	"github.com/katalvlaran/ropesim/view"
)

var (
	knots    = flag.Int("knots", 10, "Knot count of the long rope")
	watch    = flag.Bool("watch", false, "Animate the long rope in the terminal (q/Esc to quit)")
	delay    = flag.Duration("delay", 50*time.Millisecond, "Frame delay in -watch mode")
	random   = flag.Int("random", 0, "Generate this many random commands instead of reading <input>")
	seed     = flag.Uint64("seed", 1, "Seed for -random")
	maxSteps = flag.Int("max", 9, "Maximum steps per command for -random")
	verbose  = flag.Bool("v", false, "Log the tail count after every command")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("ropesim: ")

	cmds, err := loadCommands()
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("loaded %d commands", len(cmds))
	}

	if *watch {
		// Only the long rope is animated; the 2-knot run is computed directly.
		short, err := ropesim.Count(cmds, 2)
		if err != nil {
			log.Fatal(err)
		}
		count, err := runWatch(cmds)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		fmt.Printf("2 knots: %d\n", short)
		fmt.Printf("%d knots: %d\n", *knots, count)
		return
	}

	res, err := solve(cmds)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("2 knots: %d\n", res.TwoKnots)
	fmt.Printf("%d knots: %d\n", *knots, res.TenKnots)
}

func loadCommands() ([]motion.Command, error) {
	if *random > 0 {
		return motion.RandomWalk(*seed, *random, *maxSteps), nil
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return motion.Parse(f)
}

func solve(cmds []motion.Command) (ropesim.Result, error) {
	if !*verbose {
		return ropesim.SolveWith(cmds, *knots)
	}
	// Log once per command: a command ends when the step count reaches the
	// running sum of command lengths.
	var next, idx int
	return ropesim.SolveWith(cmds, *knots, rope.WithStepHook(func(ev rope.StepEvent) {
		if ev.Step == 1 {
			next, idx = cmds[0].Steps, 0
		}
		if ev.Step < next {
			return
		}
		log.Printf("%d knots: %-6s tail=%d", len(ev.Knots), cmds[idx], ev.TailVisits)
		idx++
		if idx < len(cmds) {
			next += cmds[idx].Steps
		}
	}))
}

// runWatch animates the long rope and returns its tail count once the user quits.
// If the user quits early the count covers only the commands shown so far.
func runWatch(cmds []motion.Command) (int, error) {
	sim, err := rope.New(*knots)
	if err != nil {
		return 0, err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, err
	}
	if err := screen.Init(); err != nil {
		return 0, err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	if err := view.Watch(ctx, screen, sim, cmds, view.DefaultStyles(), *delay); err != nil {
		return sim.TailVisitCount(), err
	}
	// Keep the final frame up until the user quits.
	<-ctx.Done()
	return sim.TailVisitCount(), nil
}
