package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the symbol a side plays, or EmptyCell for an unoccupied cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const BoardSize = 9

// WinCombos - the 3 rows, 3 columns and 2 diagonals of the board.
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

// Opponent returns the other playing mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board holds the 9 cells in row-major order.
type Board [BoardSize]Mark

func (that *Board) Place(index int, mark Mark) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if that[index] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that[index] = mark

	return nil
}

// IsEmptyCell reports whether index is on the board and unoccupied.
func (that *Board) IsEmptyCell(index int) bool {
	return index >= 0 && index < BoardSize && that[index] == EmptyCell
}

func (that *Board) HasWon(mark Mark) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

// Winner - returns the mark that fills any of the WinCombos.
func (that *Board) Winner() (Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return EmptyCell, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyIndices - unoccupied cells in ascending order.
func (that *Board) EmptyIndices() []int {
	indices := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			indices = append(indices, i)
		}
	}

	return indices
}

// Outcome classifies the board: a winning line first, then a full board.
func (that *Board) Outcome() Outcome {
	if winner, ok := that.Winner(); ok {
		return Outcome{Status: StatusWin, Winner: winner}
	}

	if that.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusInProgress}
}

func (that *Board) Reset() {
	*that = Board{}
}
