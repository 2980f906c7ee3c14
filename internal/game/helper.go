package game

// Marker is the single character a player puts on the board.
type Marker string

const (
	// None marks an empty cell and is also returned when nobody has won.
	None Marker = ""

	// PlayerX is the marker used by the tutorial.
	PlayerX Marker = "X"
)

// Board boundaries
const (
	PositionMin    = 1 // First position of the board
	PositionMax    = 9 // Last position of the board
	CenterPosition = 5
)

// Lines holds the eight winning triples, scanned rows first, then columns, then diagonals.
var Lines = [8][3]int{
	{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, // rows
	{1, 4, 7}, {2, 5, 8}, {3, 6, 9}, // columns
	{1, 5, 9}, {3, 5, 7}, // diagonals
}

// Valid reports whether m can be placed on a board: exactly one character, not a blank.
func (m Marker) Valid() bool {
	r := []rune(string(m))
	return len(r) == 1 && r[0] != ' '
}

func (m Marker) String() string {
	return string(m)
}
