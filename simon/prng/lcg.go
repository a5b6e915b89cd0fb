package prng

import "github.com/cwoodall/go-simon/simon/move"

// Parameters for the game's generator. The multiplier minus one is divisible
// by every prime factor of the modulus and the increment is coprime with it,
// which gives the sequence the full period of 32768 values.
const (
	Multiplier uint16 = 513
	Increment  uint16 = 1
	Modulus    uint16 = 32768 // 2^15
)

// Next advances a linear congruential generator one step:
// state' = (state*multiplier + increment) mod modulus.
// The caller owns the state; nothing is retained here.
func Next(state, multiplier, increment, modulus uint16) uint16 {
	return (state*multiplier + increment) % modulus
}

// Step advances a state using the game's fixed parameters.
func Step(state uint16) uint16 {
	return Next(state, Multiplier, Increment, Modulus)
}

// MoveFor derives a one-hot move from a generator output. Only the two most
// significant of the 15 used bits are consumed; the low-order bits of an LCG
// are much weaker statistically.
func MoveFor(state uint16) move.Move {
	return move.Move(0x01 << (state >> 13))
}
