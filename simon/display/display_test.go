package display

import (
	"testing"

	"github.com/cwoodall/go-simon/simon/move"
)

func TestEncodeValidMoves(t *testing.T) {
	tests := []struct {
		move     move.Move
		expected uint8
	}{
		{move.A, 0x03},
		{move.B, 0x04},
		{move.C, 0x06},
		{move.D, 0x01},
	}

	for _, tt := range tests {
		result := Encode(tt.move)
		if result != tt.expected {
			t.Errorf("Encode(%v) = %#02x; want %#02x", tt.move, result, tt.expected)
		}
	}
}

func TestEncodeIsTotal(t *testing.T) {
	// Every uint8 that is not one of the four symbols must turn the
	// display off, including zero and multi-bit values.
	valid := map[move.Move]bool{move.A: true, move.B: true, move.C: true, move.D: true}

	for v := 0; v < 256; v++ {
		m := move.Move(v)
		if valid[m] {
			continue
		}
		if result := Encode(m); result != 0x00 {
			t.Errorf("Encode(%#02x) = %#02x; want 0x00", v, result)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for i := 0; i < move.Count; i++ {
		m := move.FromIndex(i)
		if result := Decode(Encode(m)); result != m {
			t.Errorf("Decode(Encode(%v)) = %v; want %v", m, result, m)
		}
	}
}

func TestDecodeUnknownPatterns(t *testing.T) {
	tests := []uint8{0x00, 0x02, 0x05, 0x07}

	for _, pattern := range tests {
		if result := Decode(pattern); result != move.None {
			t.Errorf("Decode(%#02x) = %v; want none", pattern, result)
		}
	}
}

func TestDecodeIgnoresHighBits(t *testing.T) {
	if result := Decode(0xF8 | PatternB); result != move.B {
		t.Errorf("Decode should mask to the display lines, got %v", result)
	}
}
