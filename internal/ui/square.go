package ui

import "github.com/rocketscienceinc/tictactoe-tui/internal/entity"

const emptySymbol = " "

// renderSquare draws one cell. The winning highlight takes precedence over the cursor.
func renderSquare(mark entity.Mark, selected, winning bool) string {
	symbol := string(mark)
	if mark.IsEmpty() {
		symbol = emptySymbol
	}

	switch {
	case winning:
		return WinningSquareStyle.Render(symbol)
	case selected:
		return CursorSquareStyle.Render(symbol)
	default:
		return SquareStyle.Render(symbol)
	}
}
