// Package sim provides a simulated board for tests and headless runs. It
// records everything the game does to the hardware and plays back scripted
// analog samples, with a clock that only accumulates virtual time.
package sim

import (
	"time"

	"github.com/cwoodall/go-simon/simon/hw"
)

// Board implements hw.Board entirely in memory.
type Board struct {
	samples []uint16
	port    uint8
	writes  []uint8
	storage map[uint16]uint16
	elapsed time.Duration
}

var _ hw.Board = (*Board)(nil)

func New() *Board {
	return &Board{
		storage: make(map[uint16]uint16),
	}
}

// QueueSamples appends raw analog readings to the script. Each Sample call
// consumes one; an exhausted script reads as 0 (nothing pressed).
func (b *Board) QueueSamples(samples ...uint16) {
	b.samples = append(b.samples, samples...)
}

// HoldSample queues the same reading n times, emulating a held button.
func (b *Board) HoldSample(raw uint16, n int) {
	for i := 0; i < n; i++ {
		b.samples = append(b.samples, raw)
	}
}

func (b *Board) Sample() uint16 {
	if len(b.samples) == 0 {
		return 0
	}
	s := b.samples[0]
	b.samples = b.samples[1:]
	return s
}

func (b *Board) Set(pattern uint8) {
	b.port = pattern
	b.writes = append(b.writes, pattern)
}

// Port returns the pattern currently on the output lines.
func (b *Board) Port() uint8 {
	return b.port
}

// Writes returns every pattern written so far, in order.
func (b *Board) Writes() []uint8 {
	return b.writes
}

// ClearWrites drops the recorded write history, keeping the current port.
func (b *Board) ClearWrites() {
	b.writes = nil
}

func (b *Board) ReadWord(offset uint16) uint16 {
	return b.storage[offset]
}

func (b *Board) WriteWord(offset uint16, value uint16) {
	b.storage[offset] = value
}

// Sleep advances virtual time only; simulated runs never block.
func (b *Board) Sleep(d time.Duration) {
	b.elapsed += d
}

// Elapsed returns the total virtual time slept so far.
func (b *Board) Elapsed() time.Duration {
	return b.elapsed
}
