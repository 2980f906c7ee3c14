package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrCellOccupied    = errors.New("cell already occupied")
	ErrInvalidMarker   = errors.New("invalid marker")
)

// Board is the 3x3 grid, addressed by positions 1..9 in row-major order.
type Board struct {
	cells [PositionMax]Marker
}

func NewBoard() *Board {
	return &Board{}
}

// Set marks an empty cell. Callers are expected to pick positions from UnmarkedPositions.
func (b *Board) Set(position int, m Marker) error {
	if position < PositionMin || position > PositionMax {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMarker, m)
	}
	if b.cells[position-1] != None {
		return fmt.Errorf("%w: %d", ErrCellOccupied, position)
	}

	b.cells[position-1] = m
	return nil
}

// At returns the marker at position, or None for empty or out-of-range positions.
func (b *Board) At(position int) Marker {
	if position < PositionMin || position > PositionMax {
		return None
	}
	return b.cells[position-1]
}

// UnmarkedPositions returns the empty positions in ascending order.
func (b *Board) UnmarkedPositions() []int {
	positions := make([]int, 0, PositionMax)
	for i, cell := range b.cells {
		if cell == None {
			positions = append(positions, i+1)
		}
	}
	return positions
}

// MarkedCount returns how many cells hold a marker.
func (b *Board) MarkedCount() int {
	return PositionMax - len(b.UnmarkedPositions())
}

// IsFull checks if no empty cell is left.
func (b *Board) IsFull() bool {
	return len(b.UnmarkedPositions()) == 0
}

// WinningMarker returns the marker filling the first complete line, or None.
func (b *Board) WinningMarker() Marker {
	for _, line := range Lines {
		first, second, third := b.At(line[0]), b.At(line[1]), b.At(line[2])
		if first != None && first == second && second == third {
			return first
		}
	}
	return None
}

func (b *Board) HasWinner() bool {
	return b.WinningMarker() != None
}

// ImmediateThreat finds the first line where target holds two cells and the third is empty,
// and returns that empty position. It serves both to attack and to block.
func (b *Board) ImmediateThreat(target Marker) (position int, found bool) {
	if target == None {
		return 0, false
	}

	for _, line := range Lines {
		count, empty := 0, 0
		for _, p := range line {
			switch b.At(p) {
			case target:
				count++
			case None:
				empty = p
			}
		}
		// A full line has no empty cell, so it is skipped here.
		if count == 2 && empty != 0 {
			return empty, true
		}
	}
	return 0, false
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [PositionMax]Marker{}
}

// Render draws the board as ASCII art. style, if not nil, decorates each non-empty marker.
func (b *Board) Render(style func(Marker) string) string {
	cell := func(p int) string {
		m := b.At(p)
		if m == None {
			return " "
		}
		if style != nil {
			return style(m)
		}
		return m.String()
	}

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("-----+-----+-----\n")
		}
		p := row*3 + 1
		sb.WriteString("     |     |\n")
		fmt.Fprintf(&sb, "  %s  |  %s  |  %s\n", cell(p), cell(p+1), cell(p+2))
		sb.WriteString("     |     |\n")
	}
	return sb.String()
}

// String renders the board without styling.
func (b *Board) String() string {
	return b.Render(nil)
}
