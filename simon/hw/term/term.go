// Package term is the interactive board: a tcell front-end that renders the
// four LEDs from decoded port patterns and synthesizes analog samples from
// key presses.
package term

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cwoodall/go-simon/simon/bit"
	"github.com/cwoodall/go-simon/simon/display"
	"github.com/cwoodall/go-simon/simon/hw"
	"github.com/cwoodall/go-simon/simon/input"
	"github.com/cwoodall/go-simon/simon/move"
)

// keyHold is how long a key press reads as a pressed button. Long enough for
// the ~1 ms poll loop to see it, short enough to feel like a tap.
const keyHold = 150 * time.Millisecond

var ledColors = [move.Count]tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
}

// Board implements hw.Board on a terminal. Word storage is delegated to an
// injected implementation, usually a FileStorage.
type Board struct {
	screen  tcell.Screen
	storage hw.WordStorage

	mu        sync.Mutex
	sample    uint16
	heldUntil time.Time
	quit      bool
	port      uint8
}

var _ hw.Board = (*Board)(nil)

// New opens the terminal and starts the event loop. The default logger is
// routed to io.Discard while the screen is live; text output would corrupt
// the display.
func New(storage hw.WordStorage) (*Board, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	b := &Board{
		screen:  screen,
		storage: storage,
	}

	go b.pollEvents()

	b.render()
	return b, nil
}

// Close restores the terminal.
func (b *Board) Close() {
	b.screen.Fini()
}

// Quit reports whether the player asked to leave.
func (b *Board) Quit() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.quit
}

func (b *Board) pollEvents() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			b.screen.Sync()
		case *tcell.EventKey:
			b.handleKey(ev)
		}
	}
}

func (b *Board) handleKey(ev *tcell.EventKey) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
		b.quit = true
		return
	}

	if r := ev.Rune(); r >= '1' && r <= '4' {
		b.sample = input.RawFor(move.FromIndex(int(r - '1')))
		b.heldUntil = time.Now().Add(keyHold)
	}
}

func (b *Board) Sample() uint16 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if time.Now().After(b.heldUntil) {
		return 0
	}
	return b.sample
}

func (b *Board) Set(pattern uint8) {
	b.mu.Lock()
	b.port = pattern
	b.mu.Unlock()

	b.render()
}

func (b *Board) ReadWord(offset uint16) uint16 {
	return b.storage.ReadWord(offset)
}

func (b *Board) WriteWord(offset uint16, value uint16) {
	b.storage.WriteWord(offset, value)
}

func (b *Board) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (b *Board) render() {
	b.mu.Lock()
	port := b.port
	b.mu.Unlock()

	lit := display.Decode(port)

	b.drawText(2, 1, tcell.StyleDefault.Bold(true), "SIMON")
	b.drawText(2, 2, tcell.StyleDefault.Dim(true), "keys 1-4 to play, q to quit")

	for i := 0; i < move.Count; i++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		led := " ( ) "
		if move.FromIndex(i) == lit {
			style = tcell.StyleDefault.Foreground(ledColors[i]).Bold(true)
			led = " (#) "
		}
		b.drawText(2+i*7, 4, style, led)
		b.drawText(4+i*7, 5, tcell.StyleDefault.Dim(true), fmt.Sprintf("%d", i+1))
	}

	// Raw line state, the three port bits the display owns.
	for line := uint8(0); line < 3; line++ {
		mark := "_"
		if bit.IsSet(line, port&display.LineMask) {
			mark = "^"
		}
		b.drawText(2+int(line)*2, 7, tcell.StyleDefault.Dim(true), mark)
	}

	b.screen.Show()
}

func (b *Board) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		b.screen.SetContent(x+i, y, r, nil, style)
	}
}
