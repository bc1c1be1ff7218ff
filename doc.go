// Package ropesim simulates knotted ropes dragged across an unbounded grid
// and counts the distinct cells their tails visit.
//
// What is inside:
//
//	grid/         growable 2D cell store with a monotonic head/tail visit lattice
//	rope/         N-knot chain simulator with the follow-the-leader rule
//	motion/       motion commands, the "<letter> <steps>" text format, random walks
//	view/         terminal (tcell) rendering and animated playback
//	cmd/ropesim/  command-line front end
//
// Quick start:
//
//	cmds, err := motion.Parse(f)
//	res, err := ropesim.Solve(cmds)
//	fmt.Println(res.TwoKnots, res.TenKnots)
//
// Every package is single-threaded: each unit step
// depends on the state left by the previous one.
package ropesim
