package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/config"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/logger"
	"ctchen222/Tic-Tac-Toe-CLI/internal/match"
	"ctchen222/Tic-Tac-Toe-CLI/internal/telemetry"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/muesli/termenv"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "tictactoe: %v\n", r)
			code = 1
		}
	}()

	ctx := context.Background()

	conf := config.MustLoad(os.Getenv("TICTACTOE_CONFIG"))

	// Logs stay off stdout, which belongs to the game.
	var logOut io.Writer = os.Stderr
	if conf.LogFile != "" {
		f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	logger.Init(logOut, conf.Level(), conf.TelemetryEnabled())

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Warn("error shutting down telemetry", "error", err)
		}
	}()

	seed := conf.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	term := termenv.NewOutput(os.Stdout)
	ui := console.New(console.NewStreamPort(os.Stdin, term), term, conf.Game.ClearScreen)

	session := match.NewSession(ui, match.SessionOptions{
		ComputerMarker: game.Marker(conf.Game.ComputerMarker),
		ComputerNames:  conf.Game.ComputerNames,
		Match: match.Options{
			MaxWins:    conf.Game.MaxWins,
			FirstMover: conf.Game.FirstMover,
		},
		Rand: rng,
	})
	slog.Debug("session created", "session.id", session.ID, "seed", seed)

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			session.Goodbye()
			return 0
		}
		slog.Error("game aborted", "error", err)
		return 1
	}
	return 0
}
