package prng

import (
	"testing"

	"github.com/cwoodall/go-simon/simon/move"
)

func TestNextIsDeterministic(t *testing.T) {
	seeds := []uint16{0, 1, 46, 12345, 32767}

	for _, seed := range seeds {
		first := Next(seed, Multiplier, Increment, Modulus)
		second := Next(seed, Multiplier, Increment, Modulus)
		if first != second {
			t.Errorf("Next(%d, ...) not deterministic: %d vs %d", seed, first, second)
		}
	}
}

func TestNextStaysInRange(t *testing.T) {
	state := uint16(0)
	for i := 0; i < 1000; i++ {
		state = Step(state)
		if state >= Modulus {
			t.Fatalf("state %d escaped the modulus after %d steps", state, i+1)
		}
	}
}

func TestFullPeriod(t *testing.T) {
	// Starting from any seed, the sequence must visit all 32768 values
	// before the seed reappears.
	seed := uint16(46)
	visited := make([]bool, Modulus)

	state := seed
	for i := 0; i < int(Modulus); i++ {
		state = Step(state)
		if visited[state] {
			t.Fatalf("value %d repeated after %d steps", state, i+1)
		}
		visited[state] = true
	}

	if state != seed {
		t.Errorf("sequence did not return to seed %d after %d steps (got %d)", seed, Modulus, state)
	}
}

func TestMoveFor(t *testing.T) {
	tests := []struct {
		state    uint16
		expected move.Move
	}{
		{0x0000, move.A},
		{0x1FFF, move.A},
		{0x2000, move.B},
		{0x3FFF, move.B},
		{0x4000, move.C},
		{0x5FFF, move.C},
		{0x6000, move.D},
		{0x7FFF, move.D},
	}

	for _, tt := range tests {
		result := MoveFor(tt.state)
		if result != tt.expected {
			t.Errorf("MoveFor(%#04x) = %v; want %v", tt.state, result, tt.expected)
		}
	}
}

func TestMoveForAlwaysValid(t *testing.T) {
	state := uint16(1)
	for i := 0; i < int(Modulus); i++ {
		if m := MoveFor(state); !m.IsValid() {
			t.Fatalf("MoveFor(%#04x) = %v, not a valid move", state, m)
		}
		state = Step(state)
	}
}
