package match

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/bot"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/human"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"ctchen222/Tic-Tac-Toe-CLI/internal/tutorial"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SessionOptions configures a whole program run.
type SessionOptions struct {
	ComputerMarker game.Marker
	ComputerNames  []string
	Match          Options
	Rand           *rand.Rand

	// Computer replaces the heuristic bot when set.
	Computer *player.Player
}

// Session is one program run: greeting, optional tutorial, then matches until the human quits.
type Session struct {
	ID       string
	ui       *console.Console
	opts     SessionOptions
	human    *player.Player
	computer *player.Player
	matches  int
}

func NewSession(ui *console.Console, opts SessionOptions) *Session {
	computer := opts.Computer
	if computer == nil {
		computer = bot.NewBotPlayer(opts.ComputerNames, opts.ComputerMarker, opts.Rand)
	}
	return &Session{
		ID:       uuid.New().String(),
		ui:       ui,
		opts:     opts,
		computer: computer,
	}
}

func (s *Session) Human() *player.Player { return s.human }
func (s *Session) Computer() *player.Player { return s.computer }

// Run plays the session to the goodbye message.
func (s *Session) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "session.Run", trace.WithAttributes(attribute.String("session.id", s.ID)))
	defer span.End()

	if err := s.run(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Session ended early")
		return err
	}
	span.SetAttributes(attribute.Int("session.matches", s.matches))
	return nil
}

func (s *Session) run(ctx context.Context) error {
	s.ui.Clear()
	name, err := human.AskName(s.ui)
	if err != nil {
		return err
	}

	s.ui.Clear()
	s.ui.Say("Hello %s, welcome to Tic Tac Toe!", name)
	s.ui.Blank()

	wantsTutorial, err := s.ui.AskYesNo("Would you like to enter a tutorial? (y/n)", "Sorry, please only enter 'y' or 'n'")
	if err != nil {
		return err
	}
	if wantsTutorial {
		if err := tutorial.New(s.ui).Run(ctx); err != nil {
			return err
		}
	}

	marker, err := human.AskMarker(s.ui, s.computer.Marker())
	if err != nil {
		return err
	}
	s.human = player.NewPlayer(name, marker, human.NewInput(s.ui))
	slog.InfoContext(ctx, "session started", "session.id", s.ID, "computer", s.computer.Name(), "tutorial", wantsTutorial)

	for {
		s.matches++
		m := NewMatch(s.ui, s.human, s.computer, s.opts.Match)
		if _, err := m.Play(ctx); err != nil {
			return err
		}

		again, err := s.ui.AskYesNo("Would you like to play a new game? (y/n)", "Sorry, must be y or n")
		if err != nil {
			return err
		}
		if !again {
			break
		}
		s.resetScores()
	}

	s.Goodbye()
	return nil
}

func (s *Session) resetScores() {
	s.human.ResetScore()
	s.computer.ResetScore()
	s.ui.Clear()
}

// Goodbye prints the farewell line. It is also used when input ends early.
func (s *Session) Goodbye() {
	s.ui.Blank()
	s.ui.Say("Thanks for playing Tic Tac Toe! Goodbye!")
}
