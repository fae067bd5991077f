package ui

import (
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

const (
	boardSide   = 3
	columnSep   = "│"
	rowSep      = "─────┼─────┼─────"
	noCursor    = -1
	boardHeight = boardSide*2 - 1
)

// renderBoard lays out the nine squares row by row.
// cursor is the selected cell, or noCursor when the board has no focus.
// Cells in line are highlighted as the winning line.
func renderBoard(board entity.Board, cursor int, line []int) string {
	rows := make([]string, 0, boardHeight)

	for row := 0; row < boardSide; row++ {
		cells := make([]string, 0, boardSide)
		for col := 0; col < boardSide; col++ {
			i := row*boardSide + col
			cells = append(cells, renderSquare(board[i], i == cursor, slices.Contains(line, i)))
		}

		if row > 0 {
			rows = append(rows, DimStyle.Render(rowSep))
		}
		rows = append(rows, strings.Join(cells, DimStyle.Render(columnSep)))
	}

	return strings.Join(rows, "\n")
}

// moveCursor shifts the cursor by one row or column, clamped to the grid.
func moveCursor(cursor, dRow, dCol int) int {
	row := clamp(cursor/boardSide+dRow, 0, boardSide-1)
	col := clamp(cursor%boardSide+dCol, 0, boardSide-1)

	return row*boardSide + col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
