// Package input turns raw analog samples into debounced game moves. The four
// buttons share one analog line through a resistor ladder, so each button
// reads back as a narrow band of converter values.
package input

import "github.com/cwoodall/go-simon/simon/move"

// ActivationThreshold is the idle-state wake level: any sample above it
// counts as "somebody pressed something".
const ActivationThreshold uint16 = 200

// band is an inclusive range of 10-bit converter values for one button.
type band struct {
	lo, hi uint16
	move   move.Move
}

// The bands are 20 units wide and hardware-calibrated. No time-based
// debouncing happens here; callers must keep a minimum poll interval
// (about 1 ms) or boundary noise can produce double edges.
var bands = [move.Count]band{
	{500, 520, move.A},
	{600, 620, move.B},
	{660, 680, move.C},
	{710, 730, move.D},
}

// Level maps a raw sample to the move whose band contains it, without any
// edge handling. Samples outside every band map to None.
func Level(raw uint16) move.Move {
	for _, b := range bands {
		if raw >= b.lo && raw <= b.hi {
			return b.move
		}
	}
	return move.None
}

// Classify maps a raw sample to a move and applies the level-to-edge rule:
// a reading equal to the previous one is suppressed, so a held button
// reports exactly once, on the transition. It returns the reported move and
// the new previous-move value. When a reading is suppressed the previous
// value is left unchanged; otherwise it tracks the reading, including the
// drop back to None when the button is released.
func Classify(raw uint16, prev move.Move) (move.Move, move.Move) {
	m := Level(raw)
	if m == prev {
		return move.None, prev
	}
	return m, m
}

// RawFor returns a reading from the middle of a move's band, for boards that
// synthesize samples instead of measuring them. None and invalid moves read
// as 0.
func RawFor(m move.Move) uint16 {
	for _, b := range bands {
		if b.move == m {
			return (b.lo + b.hi) / 2
		}
	}
	return 0
}

// Classifier carries the previous-move state between polls.
type Classifier struct {
	prev move.Move
}

// Press classifies one sample, updating the edge-detection state.
func (c *Classifier) Press(raw uint16) move.Move {
	m, prev := Classify(raw, c.prev)
	c.prev = prev
	return m
}

// Reset clears the edge-detection state, as after a power cycle.
func (c *Classifier) Reset() {
	c.prev = move.None
}
