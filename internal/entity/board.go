package entity

// Mark is the value of a single board cell as the learning agent observes
// it: the agent's own marks are +1, the opponent's are -1, empty cells 0.
type Mark int8

const (
	EmptyCell    Mark = 0
	AgentMark    Mark = 1
	OpponentMark Mark = -1
)

// BoardCells is the number of cells on the 3x3 grid.
const BoardCells = 9

// WinLines - the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var WinLines = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the flat 3x3 grid. Serialized as a 9-element vector of
// {-1, 0, +1}, which is also the observation returned to the caller.
type Board [BoardCells]Mark

// Winner - scans the 8 winning lines for three equal non-empty marks and
// returns the winning mark, or EmptyCell when no line is complete.
func (that *Board) Winner() Mark {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsFull - reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - returns the indices of all currently empty cells.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// CountMarks - returns how many cells carry the given mark.
func (that *Board) CountMarks(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Key - returns a compact string form of the board, usable as a map key
// for value tables keyed by observation.
func (that *Board) Key() string {
	buf := make([]byte, len(that))
	for i, cell := range that {
		// shift {-1,0,+1} into printable bytes
		buf[i] = byte('1' + cell)
	}

	return string(buf)
}
