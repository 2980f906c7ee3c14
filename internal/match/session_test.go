package match

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/config"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/mocks"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSession_NewGameResetsScores(t *testing.T) {
	// Given: no tutorial, two one-win matches, then quit
	ui, out := newTestConsole("Ada\nn\nX\n\n1\n2\n3\ny\n\n1\n2\n3\nn\n")
	sel := mocks.NewMockMoveSelector(gomock.NewController(t))
	scriptComputer(sel, 4, 5, 4, 5)

	s := NewSession(ui, SessionOptions{
		ComputerMarker: "O",
		Match:          Options{MaxWins: 1, FirstMover: config.FirstMoverHuman},
		Computer:       player.NewPlayer("R2D2", "O", sel),
	})

	// When
	err := s.Run(context.Background())

	// Then: the second match started from zero, so the human ends on one win
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Human().Name())
	assert.Equal(t, 1, s.Human().Score())
	assert.Equal(t, 0, s.Computer().Score())
	assert.Equal(t, 2, s.matches)

	text := out.String()
	assert.Contains(t, text, "What is your name?")
	assert.Contains(t, text, "Hello Ada, welcome to Tic Tac Toe!")
	assert.NotContains(t, text, "Welcome to the Tic Tac Toe tutorial!")
	assert.Equal(t, 2, strings.Count(text, "Congratulations, Ada is the ULTIMATE WINNER!"))
	assert.Equal(t, 2, strings.Count(text, "Would you like to play a new game? (y/n)"))
	assert.True(t, strings.HasSuffix(text, "Thanks for playing Tic Tac Toe! Goodbye!\n"))
}

func TestSession_WithTutorial(t *testing.T) {
	// Given: the tutorial is taken and left at the first practice prompt
	input := "Ada\nmaybe\ny\n" +
		"\n\n\n5\nexit\n\n\n\n\n\n" +
		"X\n\n1\n2\n3\nn\n"
	ui, out := newTestConsole(input)
	sel := mocks.NewMockMoveSelector(gomock.NewController(t))
	scriptComputer(sel, 4, 5)

	s := NewSession(ui, SessionOptions{
		ComputerMarker: "O",
		Match:          Options{MaxWins: 1, FirstMover: config.FirstMoverHuman},
		Computer:       player.NewPlayer("R2D2", "O", sel),
	})

	// When
	err := s.Run(context.Background())

	// Then: the tutorial left no trace on the match
	require.NoError(t, err)
	assert.Equal(t, 1, s.Human().Score())

	text := out.String()
	assert.Contains(t, text, "Sorry, please only enter 'y' or 'n'")
	assert.Contains(t, text, "Welcome to the Tic Tac Toe tutorial!")
	assert.Contains(t, text, "That concludes this tutorial!")
	assert.Contains(t, text, "Thanks for playing Tic Tac Toe! Goodbye!")
}

func TestSession_NewGameRechoosesFirstMover(t *testing.T) {
	// Given: the human goes first in match one and second in match two
	ui, out := newTestConsole("Ada\nn\nX\n" +
		"1\n\n1\n2\n3\ny\n" +
		"2\n\n4\n5\nn\n")
	sel := mocks.NewMockMoveSelector(gomock.NewController(t))
	gomock.InOrder(
		sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), game.Marker("O"), game.Marker("X")).Return(4, nil),
		sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), game.Marker("O"), game.Marker("X")).Return(5, nil),
		sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), game.Marker("O"), game.Marker("X")).
			DoAndReturn(func(_ context.Context, b *game.Board, _, _ game.Marker) (int, error) {
				assert.Equal(t, 0, b.MarkedCount(), "computer should open match two on an empty board")
				return 1, nil
			}),
		sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), game.Marker("O"), game.Marker("X")).Return(2, nil),
		sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), game.Marker("O"), game.Marker("X")).Return(3, nil),
	)

	s := NewSession(ui, SessionOptions{
		ComputerMarker: "O",
		Match:          Options{MaxWins: 1, FirstMover: config.FirstMoverChoose},
		Computer:       player.NewPlayer("R2D2", "O", sel),
	})

	// When
	err := s.Run(context.Background())

	// Then: the first mover was asked once per match and the scores were reset in between
	require.NoError(t, err)
	assert.Equal(t, 2, s.matches)
	assert.Equal(t, 0, s.Human().Score())
	assert.Equal(t, 1, s.Computer().Score())

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Enter '1' to go first or '2' to go second"))
	assert.Contains(t, text, "Congratulations, Ada is the ULTIMATE WINNER!")
	assert.Contains(t, text, "R2D2 is the ULTIMATE WINNER")
}

func TestSession_AgainstHeuristicBot(t *testing.T) {
	// Given: the human opens with 1 and 2, so the bot takes the center, blocks 3,
	// blocks 4 and then forces the human onto 6. Whichever of 8 or 9 the seeded
	// bot picks last, the human takes the other and the round is a tie.
	input := "Ada\nn\nX\n\n" +
		"1\n2\n7\n6\n8\n9\n" +
		"n\nn\n"
	ui, out := newTestConsole(input)

	s := NewSession(ui, SessionOptions{
		ComputerMarker: "O",
		ComputerNames:  []string{"Sonny"},
		Match:          Options{MaxWins: 1, FirstMover: config.FirstMoverHuman},
		Rand:           rand.New(rand.NewPCG(7, 7)),
	})

	// When
	err := s.Run(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Sonny", s.Computer().Name())
	assert.Equal(t, 0, s.Human().Score())
	assert.Equal(t, 0, s.Computer().Score())

	text := out.String()
	assert.Contains(t, text, "Sonny is a O.")
	assert.Contains(t, text, "It's a tie!")
	assert.Contains(t, text, "Ada: 0   Sonny: 0")
	assert.NotContains(t, text, "won!")
	assert.Contains(t, text, "  X  |  X  |  O\n")
	assert.Contains(t, text, "  O  |  O  |  X\n")
	assert.Contains(t, text, "Thanks for playing Tic Tac Toe! Goodbye!")
}

func TestSession_InputClosed(t *testing.T) {
	ui, out := newTestConsole("Ada\n")

	s := NewSession(ui, SessionOptions{ComputerMarker: "O", Match: Options{MaxWins: 2}})
	err := s.Run(context.Background())

	assert.ErrorIs(t, err, console.ErrInputClosed)
	assert.NotContains(t, out.String(), "Goodbye!")
}
