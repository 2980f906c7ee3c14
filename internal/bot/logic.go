package bot

import (
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"errors"
	"math/rand/v2"
)

var ErrBoardFull = errors.New("no moves left on the board")

// Strategy names the rule that produced a computer move.
type Strategy string

const (
	Offense Strategy = "offense"
	Defense Strategy = "defense"
	Center  Strategy = "center"
	Random  Strategy = "random"
)

// CalculateNextMove will win if it can, block if it must, take the center if it is free,
// otherwise move randomly. The random step draws from rng, or from the global
// math/rand/v2 source when rng is nil.
func CalculateNextMove(board *game.Board, botMark, opponentMark game.Marker, rng *rand.Rand) (int, Strategy, error) {
	if board.IsFull() {
		return 0, "", ErrBoardFull
	}

	// 1. Win: complete our own line
	if pos, canWin := board.ImmediateThreat(botMark); canWin {
		return pos, Offense, nil
	}

	// 2. Block: stop the opponent's line
	if pos, canBlock := board.ImmediateThreat(opponentMark); canBlock {
		return pos, Defense, nil
	}

	// 3. Center: take it if it's available
	if board.At(game.CenterPosition) == game.None {
		return game.CenterPosition, Center, nil
	}

	// 4. Random: any empty cell
	return randomMove(board, rng), Random, nil
}

func randomMove(board *game.Board, rng *rand.Rand) int {
	available := board.UnmarkedPositions()
	if rng == nil {
		return available[rand.IntN(len(available))]
	}
	return available[rng.IntN(len(available))]
}
