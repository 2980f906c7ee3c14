package human

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/validator"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrNameEmpty       = errors.New("Sorry, you have to input something")
	ErrMarkerLength    = errors.New("I'm sorry, your marker must be one character")
	ErrMarkerTaken     = errors.New("I'm sorry, that's the computer's marker")
	ErrMarkerBlank     = errors.New("Your marker cannot be a space")
	errNotWholeNumber  = errors.New("Sorry, please only input whole numbers")
	errNotAValidChoice = errors.New("Sorry, that's not a valid choice")
)

// Input reads the human's moves from the console. It implements player.MoveSelector.
type Input struct {
	ui *console.Console
}

func NewInput(ui *console.Console) *Input {
	return &Input{ui: ui}
}

// SelectMove prompts until the player names one of the empty positions.
func (h *Input) SelectMove(_ context.Context, board *game.Board, _, _ game.Marker) (int, error) {
	unmarked := board.UnmarkedPositions()
	prompt := fmt.Sprintf("Choose a square (%s): ", console.JoinOr(unmarked, ", ", "or"))

	var square int
	_, err := h.ui.Ask(prompt, func(line string) error {
		pos, err := ParsePosition(line, unmarked)
		if err != nil {
			return err
		}
		square = pos
		return nil
	})
	if err != nil {
		return 0, err
	}
	return square, nil
}

// ParsePosition validates a typed square against the allowed positions.
func ParsePosition(line string, allowed []int) (int, error) {
	line = strings.TrimSpace(line)
	pos, err := strconv.Atoi(line)
	if err != nil {
		if _, ferr := strconv.ParseFloat(line, 64); ferr == nil {
			return 0, errNotWholeNumber
		}
		return 0, errNotAValidChoice
	}
	if !slices.Contains(allowed, pos) {
		return 0, errNotAValidChoice
	}
	return pos, nil
}

// AskName asks for a non-empty name.
func AskName(ui *console.Console) (string, error) {
	return ui.Ask("What is your name?", func(name string) error {
		if err := validator.GetValidator().Var(name, "required"); err != nil {
			return ErrNameEmpty
		}
		return nil
	})
}

// CheckMarker tells why choice cannot be the human's marker, or returns nil.
func CheckMarker(choice string, computer game.Marker) error {
	switch {
	case validator.GetValidator().Var(choice, "len=1") != nil:
		return ErrMarkerLength
	case strings.EqualFold(choice, computer.String()):
		return ErrMarkerTaken
	case choice == " ":
		return ErrMarkerBlank
	}
	return nil
}

// AskMarker asks for a one-character marker distinct from the computer's.
func AskMarker(ui *console.Console, computer game.Marker) (game.Marker, error) {
	ui.Clear()
	ui.Say("Please choose one character to be your marker")
	ui.Say("(The computer's marker is '%s' so don't pick that)", computer)

	choice, err := ui.Ask("", func(choice string) error {
		return CheckMarker(choice, computer)
	})
	if err != nil {
		return game.None, err
	}
	return game.Marker(choice), nil
}
