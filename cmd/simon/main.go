package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/cwoodall/go-simon/simon/game"
	"github.com/cwoodall/go-simon/simon/hw"
	"github.com/cwoodall/go-simon/simon/hw/sim"
	"github.com/cwoodall/go-simon/simon/hw/term"
)

func main() {
	app := cli.NewApp()
	app.Name = "Simon"
	app.Description = "A Simon-style memory sequence game"
	app.Usage = "simon [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run on a simulated board without a terminal interface",
		},
		cli.IntFlag{
			Name:  "ticks",
			Usage: "Number of game ticks to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "script",
			Usage: "Comma-separated raw analog samples fed to the simulated board",
		},
		cli.StringFlag{
			Name:  "save",
			Usage: "Path of the seed storage file",
			Value: "simon-seed.bin",
		},
	}
	app.Action = runGame

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running game", "error", err)
		os.Exit(1)
	}
}

func runGame(c *cli.Context) error {
	if c.Bool("headless") {
		return runHeadless(c)
	}

	storage, err := hw.OpenFileStorage(c.String("save"))
	if err != nil {
		return err
	}

	board, err := term.New(storage)
	if err != nil {
		return err
	}
	defer board.Close()

	g := game.New(board, game.DefaultConfig())
	for !board.Quit() {
		g.Tick()
	}

	return nil
}

func runHeadless(c *cli.Context) error {
	ticks := c.Int("ticks")
	if ticks <= 0 {
		return errors.New("headless mode requires --ticks option with a positive value")
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	board := sim.New()
	samples, err := parseScript(c.String("script"))
	if err != nil {
		return err
	}
	board.QueueSamples(samples...)

	slog.Info("Running headless mode", "ticks", ticks, "scripted_samples", len(samples))

	g := game.New(board, game.DefaultConfig())
	for i := 0; i < ticks; i++ {
		g.Tick()

		if (i+1)%10 == 0 {
			slog.Info("Tick progress", "completed", i+1, "total", ticks)
		}
	}

	slog.Info("Headless execution completed",
		"ticks", ticks,
		"state", g.State().String(),
		"sequence_length", len(g.Sequence()),
		"seed", g.RandomState(),
		"virtual_elapsed", board.Elapsed())

	return nil
}

// parseScript turns "510,0,610" into a sample slice.
func parseScript(script string) ([]uint16, error) {
	if script == "" {
		return nil, nil
	}

	parts := strings.Split(script, ",")
	samples := make([]uint16, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q: %v", part, err)
		}
		samples = append(samples, uint16(v))
	}

	return samples, nil
}
