package console

import (
	"bufio"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ErrInputClosed is returned once the player's input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

// Port is the line-oriented boundary between the game and the person playing it.
type Port interface {
	ReadLine() (string, error)
	WriteLine(line string) error
}

// StreamPort is a Port over a reader and a writer, typically stdin and stdout.
type StreamPort struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewStreamPort(r io.Reader, w io.Writer) *StreamPort {
	return &StreamPort{scanner: bufio.NewScanner(r), w: w}
}

func (p *StreamPort) ReadLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

func (p *StreamPort) WriteLine(line string) error {
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// Console builds prompts and retry loops on top of a Port.
type Console struct {
	port        Port
	term        *termenv.Output
	clearScreen bool
}

// New creates a Console. term is used for screen clearing and marker styling;
// it should wrap the same writer as port.
func New(port Port, term *termenv.Output, clearScreen bool) *Console {
	return &Console{port: port, term: term, clearScreen: clearScreen}
}

// Say writes one formatted line. Output errors are not recoverable for a console game and are dropped.
func (c *Console) Say(format string, args ...any) {
	_ = c.port.WriteLine(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (c *Console) Blank() {
	_ = c.port.WriteLine("")
}

func (c *Console) ReadLine() (string, error) {
	return c.port.ReadLine()
}

// Pause waits for the player to hit enter.
func (c *Console) Pause() error {
	c.Say("(Press enter to continue)")
	_, err := c.port.ReadLine()
	return err
}

// Clear wipes the terminal when screen clearing is enabled.
func (c *Console) Clear() {
	if c.clearScreen && c.term != nil {
		c.term.ClearScreen()
	}
}

// Ask prints prompt and reads lines until check accepts one. A rejected line
// prints check's error as the retry message.
func (c *Console) Ask(prompt string, check func(string) error) (string, error) {
	if prompt != "" {
		c.Say("%s", prompt)
	}
	for {
		line, err := c.port.ReadLine()
		if err != nil {
			return "", err
		}
		if err := check(line); err != nil {
			c.Say("%s", err.Error())
			continue
		}
		return line, nil
	}
}

// AskYesNo asks until the answer is "y" or "n", in any case.
func (c *Console) AskYesNo(prompt, retry string) (bool, error) {
	answer, err := c.Ask(prompt, func(s string) error {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "y", "n":
			return nil
		}
		return errors.New(retry)
	})
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "y", nil
}

// Style decorates a marker for display.
func (c *Console) Style(m game.Marker) string {
	if c.term == nil {
		return m.String()
	}
	return c.term.String(m.String()).Bold().String()
}

// DrawBoard renders the board grid.
func (c *Console) DrawBoard(b *game.Board) {
	c.Say("%s", strings.TrimSuffix(b.Render(c.Style), "\n"))
}

// JoinOr lists numbers for a prompt: "5", "1 or 2", "1, 2, 3 or 4".
func JoinOr(nums []int, delim, lastDelim string) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], delim) + " " + lastDelim + " " + parts[len(parts)-1]
	}
}
