// Package game implements the memory-sequence game loop: a finite-state
// machine that alternates between the computer extending a move sequence and
// the player repeating it back.
package game

import (
	"log/slog"
	"time"

	"github.com/cwoodall/go-simon/simon/display"
	"github.com/cwoodall/go-simon/simon/hw"
	"github.com/cwoodall/go-simon/simon/input"
	"github.com/cwoodall/go-simon/simon/move"
	"github.com/cwoodall/go-simon/simon/prng"
)

// MaxMoves bounds the sequence length. Completing a round of this length is
// a win: the game celebrates and returns to idle instead of overflowing.
const MaxMoves = 100

// idleSeedStep is added to the generator state on every idle tick, so the
// seed keeps churning while nobody plays.
const idleSeedStep uint16 = 1

// State identifies the phase the game is in.
type State int

const (
	// Idle waits for a player, cascading the LEDs and stirring the seed.
	Idle State = iota
	// CpuTurn extends the sequence by one move and plays it all back.
	CpuTurn
	// PlayerTurn polls for input and checks it against the sequence.
	PlayerTurn
	// Lose is transient: the failure flicker plays and the game folds
	// straight back into Idle within the same tick.
	Lose
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case CpuTurn:
		return "cpu"
	case PlayerTurn:
		return "player"
	case Lose:
		return "lose"
	default:
		return "corrupt"
	}
}

// Config holds the pacing of every animation and delay. These are tunables;
// game correctness does not depend on the exact values.
type Config struct {
	PlaybackOn  time.Duration // each sequence move lit during playback
	PlaybackOff time.Duration // gap between playback moves
	TurnHandoff time.Duration // pause after playback before polling input
	FeedbackOn  time.Duration // pressed-button flash on time
	FeedbackOff time.Duration // pressed-button flash gap
	RoundPause  time.Duration // pause after a completed round
	IdleOn      time.Duration // idle cascade LED on time
	IdleOff     time.Duration // idle cascade LED off time
	FlickerOn   time.Duration // per-LED on time in the all-LED flicker
	FlickerOff  time.Duration // per-LED off time in the all-LED flicker
	FlickerLen  int           // sweeps per flicker burst
	FlashGap    time.Duration // gap between the two flicker bursts
	FlashSettle time.Duration // pause after the second burst
	ErrorStep   time.Duration // per-phase time of the fail-safe flash
	PollDelay   time.Duration // minimum interval between input polls
}

// DefaultConfig returns the timings of the ATTiny85 board.
func DefaultConfig() Config {
	return Config{
		PlaybackOn:  500 * time.Millisecond,
		PlaybackOff: 100 * time.Millisecond,
		TurnHandoff: 10 * time.Millisecond,
		FeedbackOn:  50 * time.Millisecond,
		FeedbackOff: 50 * time.Millisecond,
		RoundPause:  time.Second,
		IdleOn:      100 * time.Millisecond,
		IdleOff:     50 * time.Millisecond,
		FlickerOn:   100 * time.Microsecond,
		FlickerOff:  10 * time.Microsecond,
		FlickerLen:  100,
		FlashGap:    100 * time.Millisecond,
		FlashSettle: 500 * time.Millisecond,
		ErrorStep:   100 * time.Millisecond,
		PollDelay:   time.Millisecond,
	}
}

// Game owns all mutable game state and drives the board through its
// capability interfaces. It is single-threaded: one Tick at a time.
type Game struct {
	board hw.Board
	cfg   Config

	state      State
	moves      []move.Move
	progress   int
	random     uint16
	classifier input.Classifier

	cascadePos int
	cascadeUp  bool
}

// New creates a game in the Idle state, seeding the generator from the
// board's word storage.
func New(board hw.Board, cfg Config) *Game {
	return &Game{
		board:     board,
		cfg:       cfg,
		state:     Idle,
		moves:     make([]move.Move, 0, MaxMoves),
		random:    board.ReadWord(hw.SeedOffset),
		cascadeUp: true,
	}
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Sequence returns a copy of the move sequence built so far.
func (g *Game) Sequence() []move.Move {
	return append([]move.Move(nil), g.moves...)
}

// Progress returns how many moves the player has matched this round.
func (g *Game) Progress() int {
	return g.progress
}

// RandomState returns the current generator state.
func (g *Game) RandomState() uint16 {
	return g.random
}

// Tick evaluates the current state exactly once and acts on it. The fail-safe
// branch handles state corruption: it flashes a distinctive pattern and
// leaves the state untouched, so repeated ticks loop it forever.
func (g *Game) Tick() {
	switch g.state {
	case Idle:
		g.tickIdle()
	case CpuTurn:
		g.tickCPU()
	case PlayerTurn:
		g.tickPlayer()
	case Lose:
		g.state = Idle
	default:
		g.errorFlash()
	}
}

// Run drives the control loop until stop is closed.
func (g *Game) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		g.Tick()
	}
}

func (g *Game) tickIdle() {
	// Stir the seed and persist it, so the next game starts from
	// whatever state the idle period left behind.
	g.random += idleSeedStep
	g.board.WriteWord(hw.SeedOffset, g.random)

	g.cascadeStep()

	if g.board.Sample() > input.ActivationThreshold {
		slog.Debug("Game activated", "seed", g.random)
		g.doubleFlash()
		g.state = CpuTurn
	}
}

func (g *Game) tickCPU() {
	if len(g.moves) == MaxMoves {
		g.win()
		return
	}

	g.random = prng.Step(g.random)
	g.board.WriteWord(hw.SeedOffset, g.random)
	g.moves = append(g.moves, prng.MoveFor(g.random))

	slog.Debug("Sequence extended", "round", len(g.moves), "move", g.moves[len(g.moves)-1])

	// Play back the whole sequence, including the new move.
	for _, m := range g.moves {
		g.board.Set(display.Encode(m))
		g.board.Sleep(g.cfg.PlaybackOn)
		g.board.Set(0x00)
		g.board.Sleep(g.cfg.PlaybackOff)
	}

	g.progress = 0
	g.state = PlayerTurn
	g.board.Sleep(g.cfg.TurnHandoff)
}

func (g *Game) tickPlayer() {
	m := g.classifier.Press(g.board.Sample())
	g.board.Sleep(g.cfg.PollDelay)

	if m == move.None {
		g.board.Set(0x00)
		return
	}

	// Flash the pressed button back at the player.
	pattern := display.Encode(m)
	g.board.Set(pattern)
	g.board.Sleep(g.cfg.FeedbackOn)
	g.board.Set(0x00)
	g.board.Sleep(g.cfg.FeedbackOff)
	g.board.Set(pattern)
	g.board.Sleep(g.cfg.FeedbackOn)
	g.board.Set(0x00)

	if m != g.moves[g.progress] {
		g.lose()
		return
	}

	if g.progress == len(g.moves)-1 {
		// Whole sequence reproduced; hand the turn back.
		g.progress = 0
		g.board.Sleep(g.cfg.RoundPause)
		g.state = CpuTurn
		return
	}

	g.progress++
}

func (g *Game) lose() {
	slog.Debug("Sequence broken", "round", len(g.moves), "progress", g.progress)
	g.progress = 0
	g.moves = g.moves[:0]
	g.state = Lose
	g.doubleFlash()
	g.state = Idle
}

func (g *Game) win() {
	slog.Info("Full sequence cleared", "rounds", len(g.moves))
	g.doubleFlash()
	g.doubleFlash()
	g.progress = 0
	g.moves = g.moves[:0]
	g.state = Idle
}

// cascadeStep advances the idle animation one position, bouncing a single
// lit LED back and forth across the four positions.
func (g *Game) cascadeStep() {
	g.board.Set(display.Encode(move.FromIndex(g.cascadePos)))
	g.board.Sleep(g.cfg.IdleOn)
	g.board.Set(0x00)
	g.board.Sleep(g.cfg.IdleOff)

	if g.cascadePos == move.Count-1 {
		g.cascadeUp = false
	} else if g.cascadePos == 0 {
		g.cascadeUp = true
	}

	if g.cascadeUp {
		g.cascadePos++
	} else {
		g.cascadePos--
	}
}

// flicker sweeps all four LEDs fast enough to read as "everything lit".
func (g *Game) flicker() {
	for i := 0; i < g.cfg.FlickerLen; i++ {
		for j := 0; j < move.Count; j++ {
			g.board.Set(display.Encode(move.FromIndex(j)))
			g.board.Sleep(g.cfg.FlickerOn)
			g.board.Set(0x00)
			g.board.Sleep(g.cfg.FlickerOff)
		}
	}
}

// doubleFlash is the shared attention signal: two flicker bursts with a gap,
// used both to confirm activation and to mark a lost game.
func (g *Game) doubleFlash() {
	g.flicker()
	g.board.Sleep(g.cfg.FlashGap)
	g.flicker()
	g.board.Sleep(g.cfg.FlashSettle)
}

// errorFlash alternates two fixed patterns, visually distinct from any
// normal animation. It never changes state; external reset is the only way
// out.
func (g *Game) errorFlash() {
	g.board.Set(display.Encode(move.A))
	g.board.Sleep(g.cfg.ErrorStep)
	g.board.Set(0x00)
	g.board.Sleep(g.cfg.ErrorStep)
	g.board.Set(display.Encode(move.D))
	g.board.Sleep(g.cfg.ErrorStep)
	g.board.Set(0x00)
	g.board.Sleep(g.cfg.ErrorStep)
}
