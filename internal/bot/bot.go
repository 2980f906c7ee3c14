package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"log/slog"
	"math/rand/v2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultNames is the pool the computer's name is drawn from.
var DefaultNames = []string{"R2D2", "Sonny", "Number 5"}

// Heuristic is the computer opponent. It implements player.MoveSelector.
type Heuristic struct {
	rng   *rand.Rand
	moves metric.Int64Counter
}

// NewHeuristic creates a computer move selector drawing random moves from rng.
// A nil rng is replaced with a randomly seeded source, so play is only
// reproducible when the caller passes a seeded one.
func NewHeuristic(rng *rand.Rand) *Heuristic {
	if rng == nil {
		rng = newUnseeded()
	}
	moves, err := otel.Meter("bot").Int64Counter("tictactoe.computer.moves",
		metric.WithDescription("Moves chosen by the computer, by strategy"),
	)
	if err != nil {
		slog.Warn("failed to create computer move counter", "error", err)
	}
	return &Heuristic{rng: rng, moves: moves}
}

// SelectMove picks the computer's next position.
func (h *Heuristic) SelectMove(ctx context.Context, board *game.Board, own, opponent game.Marker) (int, error) {
	pos, strategy, err := CalculateNextMove(board, own, opponent, h.rng)
	if err != nil {
		return 0, err
	}

	slog.DebugContext(ctx, "computer chose a move", "position", pos, "strategy", strategy)
	if h.moves != nil {
		h.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("strategy", string(strategy))))
	}
	return pos, nil
}

// NewBotPlayer creates the computer player with a name picked at random from names.
// The name and every random move come from rng; nil behaves as in NewHeuristic.
func NewBotPlayer(names []string, marker game.Marker, rng *rand.Rand) *player.Player {
	if len(names) == 0 {
		names = DefaultNames
	}
	if rng == nil {
		rng = newUnseeded()
	}
	name := names[rng.IntN(len(names))]
	return player.NewPlayer(name, marker, NewHeuristic(rng))
}

func newUnseeded() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
