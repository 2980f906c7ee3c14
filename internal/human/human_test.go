package human

import (
	"bytes"
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	term := termenv.NewOutput(&out, termenv.WithProfile(termenv.Ascii))
	return console.New(console.NewStreamPort(strings.NewReader(input), term), term, false), &out
}

func TestInput_SelectMove(t *testing.T) {
	// Given: a board with 1 and 5 taken
	b := game.NewBoard()
	require.NoError(t, b.Set(1, "X"))
	require.NoError(t, b.Set(5, "O"))

	// When: the player types junk, a fraction, a taken square and then a free one
	ui, out := newTestConsole("abc\n2.5\n5\n10\n 7 \n")
	pos, err := NewInput(ui).SelectMove(context.Background(), b, "X", "O")

	// Then: the free square is returned and every bad line got its message
	require.NoError(t, err)
	assert.Equal(t, 7, pos)
	assert.Contains(t, out.String(), "Choose a square (2, 3, 4, 6, 7, 8 or 9): ")
	assert.Equal(t, 1, strings.Count(out.String(), "Sorry, please only input whole numbers"))
	assert.Equal(t, 3, strings.Count(out.String(), "Sorry, that's not a valid choice"))

	// Then: the board itself is untouched
	assert.Equal(t, game.None, b.At(7))
}

func TestInput_SelectMove_InputClosed(t *testing.T) {
	ui, _ := newTestConsole("")

	_, err := NewInput(ui).SelectMove(context.Background(), game.NewBoard(), "X", "O")

	assert.ErrorIs(t, err, console.ErrInputClosed)
}

func TestParsePosition(t *testing.T) {
	allowed := []int{2, 5, 9}

	tests := []struct {
		name    string
		line    string
		want    int
		wantErr error
	}{
		{name: "allowed square", line: "5", want: 5},
		{name: "surrounding spaces", line: " 9 ", want: 9},
		{name: "taken square", line: "1", wantErr: errNotAValidChoice},
		{name: "out of range", line: "10", wantErr: errNotAValidChoice},
		{name: "fraction", line: "2.5", wantErr: errNotWholeNumber},
		{name: "trailing junk", line: "5abc", wantErr: errNotAValidChoice},
		{name: "empty", line: "", wantErr: errNotAValidChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.line, allowed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAskName(t *testing.T) {
	ui, out := newTestConsole("\nAda\n")

	name, err := AskName(ui)

	require.NoError(t, err)
	assert.Equal(t, "Ada", name)
	assert.Contains(t, out.String(), "What is your name?")
	assert.Contains(t, out.String(), ErrNameEmpty.Error())
}

func TestCheckMarker(t *testing.T) {
	tests := []struct {
		name    string
		choice  string
		wantErr error
	}{
		{name: "single character", choice: "X"},
		{name: "unicode character", choice: "★"},
		{name: "lowercase of a different marker", choice: "x"},
		{name: "too long", choice: "XX", wantErr: ErrMarkerLength},
		{name: "empty", choice: "", wantErr: ErrMarkerLength},
		{name: "computer marker", choice: "O", wantErr: ErrMarkerTaken},
		{name: "computer marker lowercase", choice: "o", wantErr: ErrMarkerTaken},
		{name: "space", choice: " ", wantErr: ErrMarkerBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMarker(tt.choice, "O")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAskMarker(t *testing.T) {
	ui, out := newTestConsole("OO\no\n \nX\n")

	marker, err := AskMarker(ui, "O")

	require.NoError(t, err)
	assert.Equal(t, game.Marker("X"), marker)
	assert.Contains(t, out.String(), "(The computer's marker is 'O' so don't pick that)")
	assert.Contains(t, out.String(), ErrMarkerLength.Error())
	assert.Contains(t, out.String(), ErrMarkerTaken.Error())
	assert.Contains(t, out.String(), ErrMarkerBlank.Error())
}
