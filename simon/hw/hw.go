// Package hw defines the capability interfaces between the game core and the
// board it runs on. The core never touches hardware directly; everything
// below this line is injected.
package hw

import "time"

// SeedOffset is the word-storage slot holding the generator seed. It is the
// only persisted datum and its location is an agreement with the board.
const SeedOffset uint16 = 46

// OutputPort drives the shared display lines. Patterns use the least
// significant three bits of the written byte.
type OutputPort interface {
	Set(pattern uint8)
}

// AnalogSource reads the button ladder. Samples are 10-bit, 0-1023.
type AnalogSource interface {
	Sample() uint16
}

// WordStorage is non-volatile 16-bit word storage, EEPROM-like. Writes are
// expected to stick across restarts; failures are the implementation's
// problem to report or swallow, a game cannot do anything about them.
type WordStorage interface {
	ReadWord(offset uint16) uint16
	WriteWord(offset uint16, value uint16)
}

// Clock is the blocking delay primitive. All display, animation and debounce
// pacing goes through it, which keeps the game testable without wall-clock
// waits.
type Clock interface {
	Sleep(d time.Duration)
}

// Board bundles the capabilities a game needs from its platform.
type Board interface {
	OutputPort
	AnalogSource
	WordStorage
	Clock
}

// SleepClock is the deployment clock, backed by real sleeps.
type SleepClock struct{}

func (SleepClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
