package player

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
)

//go:generate mockgen -source=player.go -destination=../mocks/mock_selector.go -package=mocks

// MoveSelector is an agent that can choose a move on the board.
// It returns one of board.UnmarkedPositions(); it does not mark the board itself.
type MoveSelector interface {
	SelectMove(ctx context.Context, board *game.Board, own, opponent game.Marker) (int, error)
}

// Player represents one side of a match.
type Player struct {
	name     string
	marker   game.Marker
	score    int
	selector MoveSelector
}

// NewPlayer creates a player with a zero score.
func NewPlayer(name string, marker game.Marker, selector MoveSelector) *Player {
	return &Player{
		name:     name,
		marker:   marker,
		selector: selector,
	}
}

func (p *Player) Name() string { return p.name }
func (p *Player) Marker() game.Marker { return p.marker }
func (p *Player) Score() int { return p.score }
func (p *Player) Selector() MoveSelector { return p.selector }

// TallyWin records one round won.
func (p *Player) TallyWin() {
	p.score++
}

// ResetScore is used when a new match starts.
func (p *Player) ResetScore() {
	p.score = 0
}
