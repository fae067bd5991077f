package entity

// Mark is the symbol held by a board cell.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

const BoardSize = 9

// WinCombos lists every line of three cells, rows first, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major 3x3 grid.
type Board [BoardSize]Mark

// Result describes a completed line.
type Result struct {
	Winner Mark
	Line   [3]int
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

// Other returns the opposing mark. EmptyCell maps to PlayerX.
func (that Mark) Other() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}
