package tutorial

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/human"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("tutorial")

// Tutorial walks a new player through the rules on a practice board.
// It never touches scores.
type Tutorial struct {
	ui     *console.Console
	board  *game.Board
	input  *human.Input
	marker game.Marker
}

func New(ui *console.Console) *Tutorial {
	return &Tutorial{
		ui:     ui,
		board:  game.NewBoard(),
		input:  human.NewInput(ui),
		marker: game.PlayerX,
	}
}

// Run shows every tutorial page in order.
func (t *Tutorial) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "tutorial.Run")
	defer span.End()

	steps := []func(context.Context) error{
		t.welcome,
		t.instructions,
		t.numbering,
		t.practice,
		t.winningConditions,
		t.goodbye,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			span.RecordError(err)
			return err
		}
	}

	slog.DebugContext(ctx, "tutorial finished")
	return nil
}

func (t *Tutorial) welcome(context.Context) error {
	t.ui.Clear()
	t.ui.Say("Welcome to the Tic Tac Toe tutorial!")
	t.ui.Blank()
	return t.ui.Pause()
}

func (t *Tutorial) instructions(context.Context) error {
	t.ui.Clear()
	t.ui.Say("Tic Tac Toe is a 2-player board game played on a 3x3 grid.")
	t.ui.Say("Players take turns marking a square.")
	t.ui.Say("The first player to mark 3 squares in a row wins.")
	t.ui.Blank()
	return t.ui.Pause()
}

func (t *Tutorial) numbering(context.Context) error {
	t.ui.Clear()
	t.ui.Say("The board is numbered, like so...")
	t.ui.Blank()

	t.board.Reset()
	for pos := game.PositionMin; pos <= game.PositionMax; pos++ {
		if err := t.board.Set(pos, game.Marker(strconv.Itoa(pos))); err != nil {
			return fmt.Errorf("failed to number the board: %w", err)
		}
	}
	t.ui.DrawBoard(t.board)
	t.ui.Blank()

	t.ui.Say("Next, we'll practice placing moves on the board")
	t.ui.Blank()
	return t.ui.Pause()
}

// practice lets the player place markers until the board fills or they type exit.
func (t *Tutorial) practice(ctx context.Context) error {
	t.board.Reset()
	t.displayBoard()

	for {
		pos, err := t.input.SelectMove(ctx, t.board, t.marker, game.None)
		if err != nil {
			return err
		}
		if err := t.board.Set(pos, t.marker); err != nil {
			return fmt.Errorf("failed to place practice move: %w", err)
		}
		t.displayBoard()

		if t.board.IsFull() {
			t.ui.Say("The board is full!")
			return t.ui.Pause()
		}

		t.ui.Say("Hit 'enter' to continue or type 'exit' to move on")
		line, err := t.ui.ReadLine()
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			return nil
		}
		t.displayBoard()
	}
}

func (t *Tutorial) winningConditions(context.Context) error {
	t.ui.Clear()
	t.ui.Say("There are three ways you can win:")
	t.ui.Blank()
	if err := t.ui.Pause(); err != nil {
		return err
	}

	demos := []struct {
		caption string
		line    [3]int
	}{
		{caption: "You can get three in a row horizontally:", line: game.Lines[0]},
		{caption: "You can get three in a row vertically:", line: game.Lines[4]},
		{caption: "Or you can get three in a row diagonally:", line: game.Lines[6]},
	}
	for _, demo := range demos {
		if err := t.demonstrate(demo.caption, demo.line); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tutorial) demonstrate(caption string, line [3]int) error {
	t.board.Reset()
	for _, pos := range line {
		if err := t.board.Set(pos, t.marker); err != nil {
			return fmt.Errorf("failed to draw winning line: %w", err)
		}
	}

	t.ui.Clear()
	t.ui.Say("%s", caption)
	t.ui.Blank()
	t.ui.DrawBoard(t.board)
	t.ui.Blank()
	return t.ui.Pause()
}

func (t *Tutorial) goodbye(context.Context) error {
	t.ui.Clear()
	t.ui.Say("That concludes this tutorial!")
	t.ui.Say("Good luck!")
	t.ui.Blank()
	return t.ui.Pause()
}

func (t *Tutorial) displayBoard() {
	t.ui.Clear()
	t.ui.Say("You're a %s.", t.ui.Style(t.marker))
	t.ui.Blank()
	t.ui.DrawBoard(t.board)
	t.ui.Blank()
}
