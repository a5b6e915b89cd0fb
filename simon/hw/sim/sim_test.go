package sim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cwoodall/go-simon/simon/hw"
	"github.com/cwoodall/go-simon/simon/hw/sim"
)

func TestBoardImplementsBoard(t *testing.T) {
	var _ hw.Board = (*sim.Board)(nil)
}

func TestScriptedSamples(t *testing.T) {
	b := sim.New()
	b.QueueSamples(510, 610)
	b.HoldSample(670, 2)

	assert.Equal(t, uint16(510), b.Sample())
	assert.Equal(t, uint16(610), b.Sample())
	assert.Equal(t, uint16(670), b.Sample())
	assert.Equal(t, uint16(670), b.Sample())
	assert.Equal(t, uint16(0), b.Sample(), "exhausted script reads as idle")
}

func TestPortRecording(t *testing.T) {
	b := sim.New()
	b.Set(0x03)
	b.Set(0x00)
	b.Set(0x04)

	assert.Equal(t, uint8(0x04), b.Port())
	assert.Equal(t, []uint8{0x03, 0x00, 0x04}, b.Writes())

	b.ClearWrites()
	assert.Empty(t, b.Writes())
	assert.Equal(t, uint8(0x04), b.Port(), "clearing history keeps the port")
}

func TestStorageAndClock(t *testing.T) {
	b := sim.New()

	b.WriteWord(hw.SeedOffset, 999)
	assert.Equal(t, uint16(999), b.ReadWord(hw.SeedOffset))
	assert.Equal(t, uint16(0), b.ReadWord(0))

	b.Sleep(500 * time.Millisecond)
	b.Sleep(100 * time.Millisecond)
	assert.Equal(t, 600*time.Millisecond, b.Elapsed())
}
