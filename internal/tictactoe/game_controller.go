package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

// State is derived from the board on every call and never stored.
type State int

const (
	StateInProgress State = iota
	StateWon
	StateDrawn
)

func (that State) String() string {
	switch that {
	case StateWon:
		return "won"
	case StateDrawn:
		return "drawn"
	default:
		return "in-progress"
	}
}

// GameController owns the board and whose turn it is.
type GameController struct {
	board entity.Board
	next  entity.Mark
}

func NewGameController() *GameController {
	return &GameController{next: entity.PlayerX}
}

// CalculateWinner returns the first completed line in WinCombos order, or nil.
func CalculateWinner(board entity.Board) *entity.Result {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return &entity.Result{Winner: a, Line: combo}
		}
	}

	return nil
}

// IsBoardFull reports whether every cell holds a mark.
func IsBoardFull(board entity.Board) bool {
	return board.IsFull()
}

// Place puts the current mark on cell and passes the turn.
// A rejected move leaves the controller untouched.
func (that *GameController) Place(cell int) error {
	if that.IsOver() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.board[cell].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.board[cell] = that.next
	that.next = that.next.Other()

	return nil
}

// Reset restores the initial state from any state.
func (that *GameController) Reset() {
	that.board = entity.Board{}
	that.next = entity.PlayerX
}

func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) Next() entity.Mark {
	return that.next
}

func (that *GameController) Result() *entity.Result {
	return CalculateWinner(that.board)
}

// WinningLine returns the cells of the completed line, or nil while nobody has won.
func (that *GameController) WinningLine() []int {
	result := that.Result()
	if result == nil {
		return nil
	}

	return result.Line[:]
}

func (that *GameController) State() State {
	switch {
	case that.Result() != nil:
		return StateWon
	case IsBoardFull(that.board):
		return StateDrawn
	default:
		return StateInProgress
	}
}

// Status is the line shown above the board.
func (that *GameController) Status() string {
	if result := that.Result(); result != nil {
		return "Winner: " + string(result.Winner)
	}

	if IsBoardFull(that.board) {
		return "Draw"
	}

	return "Next player: " + string(that.Next())
}

// IsOver reports whether the game has been won or drawn.
func (that *GameController) IsOver() bool {
	return that.State() != StateInProgress
}
