// Package view draws a rope.Simulator on a tcell screen and plays command
// lists back step by step.
//
// The grid can outgrow the terminal; Draw then centres the viewport on the
// head and clips. The last screen row is a status line.
package view
