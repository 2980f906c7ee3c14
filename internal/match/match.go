package match

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/config"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("match")

// State is a step of the match state machine.
type State int

const (
	ChoosingFirstMover State = iota
	RoundInProgress
	RoundResolved
	NextRound
	MatchOver
	Abandoned
)

func (s State) String() string {
	switch s {
	case ChoosingFirstMover:
		return "choosing_first_mover"
	case RoundInProgress:
		return "round_in_progress"
	case RoundResolved:
		return "round_resolved"
	case NextRound:
		return "next_round"
	case MatchOver:
		return "match_over"
	case Abandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures a match.
type Options struct {
	MaxWins    int
	FirstMover string // one of config.FirstMover*
}

// Result is how a match ended. Winner is nil when the player declined to continue.
type Result struct {
	State  State
	Winner *player.Player
	Rounds int
}

// Match runs rounds between the human and the computer until one of them
// reaches MaxWins or the human stops.
type Match struct {
	ID       string
	ui       *console.Console
	board    *game.Board
	human    *player.Player
	computer *player.Player
	opts     Options

	state     State
	goesFirst game.Marker
	current   game.Marker
	rounds    int

	roundCounter metric.Int64Counter
	matchCounter metric.Int64Counter
}

// NewMatch creates a match. It takes ownership of both players' scores for its duration.
func NewMatch(ui *console.Console, human, computer *player.Player, opts Options) *Match {
	if opts.MaxWins < 1 {
		opts.MaxWins = 2
	}

	meter := otel.Meter("match")
	roundCounter, err := meter.Int64Counter("tictactoe.rounds", metric.WithDescription("Rounds played, by result"))
	if err != nil {
		slog.Warn("failed to create round counter", "error", err)
	}
	matchCounter, err := meter.Int64Counter("tictactoe.matches", metric.WithDescription("Matches finished, by outcome"))
	if err != nil {
		slog.Warn("failed to create match counter", "error", err)
	}

	return &Match{
		ID:           uuid.New().String(),
		ui:           ui,
		board:        game.NewBoard(),
		human:        human,
		computer:     computer,
		opts:         opts,
		state:        ChoosingFirstMover,
		roundCounter: roundCounter,
		matchCounter: matchCounter,
	}
}

func (m *Match) State() State { return m.state }

func (m *Match) Board() *game.Board { return m.board }

// CurrentMarker is the marker of the player on turn.
func (m *Match) CurrentMarker() game.Marker { return m.current }

// Play runs the match to its end.
func (m *Match) Play(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "match.Play", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.Int("match.max_wins", m.opts.MaxWins),
	))
	defer span.End()

	result, err := m.play(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Match ended with an error")
		return result, err
	}

	span.SetAttributes(attribute.String("match.outcome", result.State.String()), attribute.Int("match.rounds", result.Rounds))
	if m.matchCounter != nil {
		m.matchCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", result.State.String())))
	}
	slog.InfoContext(ctx, "match finished", "match.id", m.ID, "outcome", result.State, "rounds", result.Rounds,
		"score.human", m.human.Score(), "score.computer", m.computer.Score())
	return result, nil
}

func (m *Match) play(ctx context.Context) (Result, error) {
	if err := m.chooseFirstMover(); err != nil {
		return Result{}, err
	}
	if err := m.displayWinsNeeded(); err != nil {
		return Result{}, err
	}

	for {
		m.resetRound()
		if err := m.playRound(ctx); err != nil {
			return Result{State: m.state, Rounds: m.rounds}, err
		}

		if m.maxWinsAchieved() {
			m.state = MatchOver
			return Result{State: MatchOver, Winner: m.displayUltimateWinner(), Rounds: m.rounds}, nil
		}

		again, err := m.ui.AskYesNo("Would you like to play another round? (y/n)", "Sorry, must be y or n")
		if err != nil {
			return Result{State: m.state, Rounds: m.rounds}, err
		}
		if !again {
			m.state = Abandoned
			return Result{State: Abandoned, Rounds: m.rounds}, nil
		}

		m.state = NextRound
		m.ui.Say("Let's play again!")
		m.ui.Blank()
	}
}

// chooseFirstMover fixes who opens every round of this match.
func (m *Match) chooseFirstMover() error {
	m.state = ChoosingFirstMover

	switch m.opts.FirstMover {
	case config.FirstMoverHuman:
		m.goesFirst = m.human.Marker()
	case config.FirstMoverComputer:
		m.goesFirst = m.computer.Marker()
	default:
		m.ui.Blank()
		m.ui.Say("Would you like to go first or second?")
		m.ui.Say("Enter '1' to go first or '2' to go second")
		choice, err := m.ui.Ask("", func(s string) error {
			if s == "1" || s == "2" {
				return nil
			}
			return errors.New("\nSorry, please input either '1' or '2'")
		})
		if err != nil {
			return err
		}
		m.goesFirst = m.computer.Marker()
		if choice == "1" {
			m.goesFirst = m.human.Marker()
		}
	}

	m.current = m.goesFirst
	return nil
}

func (m *Match) displayWinsNeeded() error {
	m.ui.Blank()
	m.ui.Say("You can quit after the end of each round")
	m.ui.Say("OR you can try to continue until someone")
	m.ui.Say("wins %d times and is crowned the ULTIMATE WINNER", m.opts.MaxWins)
	return m.ui.Pause()
}

func (m *Match) resetRound() {
	m.board.Reset()
	m.current = m.goesFirst
	m.ui.Clear()
}

// playRound alternates turns until the board has a winner or is full, then settles the score.
func (m *Match) playRound(ctx context.Context) error {
	m.state = RoundInProgress
	m.rounds++

	ctx, span := tracer.Start(ctx, "match.playRound", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.Int("round", m.rounds),
		attribute.String("first_mover", m.goesFirst.String()),
	))
	defer span.End()

	m.displayBoard()
	for {
		if err := m.currentPlayerMoves(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Round aborted")
			return err
		}
		if m.board.HasWinner() || m.board.IsFull() {
			break
		}
		if m.humanTurn() {
			m.clearScreenAndDisplayBoard()
		}
	}

	m.state = RoundResolved
	winner := m.adjustScores()

	result := "tie"
	if winner != nil {
		result = "win"
		span.SetAttributes(attribute.String("round.winner", winner.Name()))
	}
	span.SetAttributes(attribute.String("round.result", result))
	if m.roundCounter != nil {
		m.roundCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}
	slog.InfoContext(ctx, "round resolved", "match.id", m.ID, "round", m.rounds, "result", result)

	m.displayResult(winner)
	return nil
}

// currentPlayerMoves asks whoever is on turn for exactly one move and places it.
func (m *Match) currentPlayerMoves(ctx context.Context) error {
	mover, opponent := m.human, m.computer
	if !m.humanTurn() {
		mover, opponent = m.computer, m.human
	}

	pos, err := mover.Selector().SelectMove(ctx, m.board, mover.Marker(), opponent.Marker())
	if err != nil {
		return fmt.Errorf("%s could not choose a move: %w", mover.Name(), err)
	}
	if err := m.board.Set(pos, mover.Marker()); err != nil {
		return fmt.Errorf("illegal move by %s: %w", mover.Name(), err)
	}
	slog.DebugContext(ctx, "move placed", "match.id", m.ID, "player", mover.Name(), "position", pos)

	m.current = opponent.Marker()
	return nil
}

func (m *Match) humanTurn() bool {
	return m.current == m.human.Marker()
}

// adjustScores is the only place scores change. It returns the round winner, nil on a tie.
func (m *Match) adjustScores() *player.Player {
	winner := m.playerWithMarker(m.board.WinningMarker())
	if winner != nil {
		winner.TallyWin()
	}
	return winner
}

func (m *Match) playerWithMarker(marker game.Marker) *player.Player {
	switch marker {
	case game.None:
		return nil
	case m.human.Marker():
		return m.human
	case m.computer.Marker():
		return m.computer
	}
	return nil
}

func (m *Match) maxWinsAchieved() bool {
	return m.human.Score() >= m.opts.MaxWins || m.computer.Score() >= m.opts.MaxWins
}

// displayUltimateWinner announces the winner of the last round, who is the one that reached MaxWins.
func (m *Match) displayUltimateWinner() *player.Player {
	winner := m.playerWithMarker(m.board.WinningMarker())
	switch winner {
	case m.human:
		m.ui.Say("Congratulations, %s is the ULTIMATE WINNER!", m.human.Name())
	case m.computer:
		m.ui.Say("%s is the ULTIMATE WINNER", m.computer.Name())
		m.ui.Say("Better luck next time!")
	}
	return winner
}

func (m *Match) displayBoard() {
	m.ui.Say("You're a %s. %s is a %s.", m.ui.Style(m.human.Marker()), m.computer.Name(), m.ui.Style(m.computer.Marker()))
	m.ui.Blank()
	m.ui.DrawBoard(m.board)
	m.ui.Blank()
}

func (m *Match) clearScreenAndDisplayBoard() {
	m.ui.Clear()
	m.displayBoard()
}

func (m *Match) displayResult(winner *player.Player) {
	m.clearScreenAndDisplayBoard()

	if winner != nil {
		m.ui.Say("%s won!", winner.Name())
	} else {
		m.ui.Say("It's a tie!")
	}

	m.displayScoreboard()
}

func (m *Match) displayScoreboard() {
	m.ui.Blank()
	m.ui.Say("------Scoreboard------")
	m.ui.Say("%s: %d   %s: %d", m.human.Name(), m.human.Score(), m.computer.Name(), m.computer.Score())
	if !m.maxWinsAchieved() {
		m.ui.Say("First to %d is the ultimate winner!", m.opts.MaxWins)
	}
	m.ui.Blank()
}
