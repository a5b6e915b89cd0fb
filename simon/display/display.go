// Package display translates one-hot moves into the 3-bit line patterns of
// the charlieplexed LED arrangement. The three lines must sit on the least
// significant three bits of one physical port; that wiring constraint is
// documented, not enforced here.
package display

import "github.com/cwoodall/go-simon/simon/move"

// LineMask selects the three port bits owned by the display.
const LineMask uint8 = 0x07

// Patterns for each symbol. The values match the physical wiring table and
// must not be changed independently of the board.
const (
	PatternA uint8 = 0x03
	PatternB uint8 = 0x04
	PatternC uint8 = 0x06
	PatternD uint8 = 0x01
)

// Encode maps a one-hot move to its charlieplex line pattern. Total over
// uint8: anything that is not one of the four symbols turns all lines off.
// Writing the result to the port is the caller's responsibility.
func Encode(m move.Move) uint8 {
	switch m {
	case move.A:
		return PatternA
	case move.B:
		return PatternB
	case move.C:
		return PatternC
	case move.D:
		return PatternD
	default:
		return 0x00
	}
}

// Decode is the reverse lookup, used by front-ends that need to know which
// LED a written pattern lights. Unknown patterns decode to None.
func Decode(pattern uint8) move.Move {
	switch pattern & LineMask {
	case PatternA:
		return move.A
	case PatternB:
		return move.B
	case PatternC:
		return move.C
	case PatternD:
		return move.D
	default:
		return move.None
	}
}
