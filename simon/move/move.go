package move

// Move is a one-hot encoded game symbol. Exactly one of the low four bits is
// set for a valid move; the zero value means "no move".
type Move uint8

const (
	None Move = 0x00
	A    Move = 0x01
	B    Move = 0x02
	C    Move = 0x04
	D    Move = 0x08
)

// Count is the number of playable symbols.
const Count = 4

// FromIndex returns the one-hot move for a position in [0, Count).
// Out-of-range positions return None.
func FromIndex(i int) Move {
	if i < 0 || i >= Count {
		return None
	}
	return Move(1 << i)
}

// Index returns the bit position of a valid move, or -1 for None and any
// value that is not one-hot over the low four bits.
func (m Move) Index() int {
	switch m {
	case A:
		return 0
	case B:
		return 1
	case C:
		return 2
	case D:
		return 3
	default:
		return -1
	}
}

// IsValid reports whether m is one of the four playable symbols.
func (m Move) IsValid() bool {
	return m.Index() >= 0
}

func (m Move) String() string {
	switch m {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case None:
		return "none"
	default:
		return "invalid"
	}
}
