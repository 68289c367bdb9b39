// Package engine implements the code-breaking game engine: secret generation,
// guess validation, black/white feedback scoring, attempt and time bookkeeping,
// and the phase state machine.
//
// The engine is pure. It never reads the wall clock, never draws, and never
// polls input. Hosts pass timestamps in explicitly and inject the random source,
// so every session can be replayed deterministically.
package engine

import "strconv"

// Color is a peg color. ColorNone means "unset" and is never part of a secret
// or of a scorable guess. Named colors start at 1.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorWhite
)

// MaxColors is the largest palette a Rules value may request.
const MaxColors = int(ColorWhite)

var colorNames = [...]string{
	ColorNone:   "None",
	ColorRed:    "Red",
	ColorGreen:  "Green",
	ColorBlue:   "Blue",
	ColorYellow: "Yellow",
	ColorPurple: "Purple",
	ColorOrange: "Orange",
	ColorCyan:   "Cyan",
	ColorWhite:  "White",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

// Next returns the color delta steps away from c, cycling through
// {None, 1..n}. Negative deltas step backwards.
func (c Color) Next(delta, n int) Color {
	size := n + 1
	v := (int(c) + delta) % size
	if v < 0 {
		v += size
	}
	return Color(v)
}

// Palette returns the n named colors in order, without ColorNone.
func Palette(n int) []Color {
	out := make([]Color, 0, n)
	for c := 1; c <= n; c++ {
		out = append(out, Color(c))
	}
	return out
}
