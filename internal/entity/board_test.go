package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: X is placed in the center
		err := board.Place(4, PlayerX)

		// Then: the cell holds X
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board[4])
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 is taken by X
		board := Board{PlayerX}

		// When: O tries the same cell
		err := board.Place(0, PlayerO)

		// Then: ErrCellOccupied is returned and the cell is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerX, board[0])
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		board := Board{}

		assert.ErrorIs(t, board.Place(9, PlayerX), apperror.ErrInvalidCell)
		assert.ErrorIs(t, board.Place(-1, PlayerX), apperror.ErrInvalidCell)
		assert.Equal(t, Board{}, board)
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Every combo wins for both marks", func(t *testing.T) {
		for _, mark := range []Mark{PlayerX, PlayerO} {
			for _, combo := range WinCombos {
				// Given: a board with one combo filled by the mark and an opponent mark elsewhere
				board := Board{}
				for _, index := range combo {
					board[index] = mark
				}
				for i := range board {
					if board[i] == EmptyCell {
						board[i] = mark.Opponent()
						break
					}
				}

				// When: asking for the winner
				winner, ok := board.Winner()

				// Then: the mark is reported
				require.True(t, ok, "combo %v mark %s", combo, mark)
				assert.Equal(t, mark, winner)
				assert.True(t, board.HasWon(mark))
				assert.Equal(t, Outcome{Status: StatusWin, Winner: mark}, board.Outcome())
			}
		}
	})

	t.Run("No winner on an ongoing board", func(t *testing.T) {
		// Given: a board where there is no winner yet
		board := Board{
			PlayerX, PlayerO, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerX, EmptyCell, EmptyCell,
		}

		// When: asking for the winner
		_, ok := board.Winner()

		// Then: none is found and the game continues
		assert.False(t, ok)
		assert.Equal(t, Outcome{Status: StatusInProgress}, board.Outcome())
	})
}

func TestBoard_Draw(t *testing.T) {
	// Given: a full board without any winning line
	board := Board{
		PlayerO, PlayerX, PlayerO,
		PlayerO, PlayerX, PlayerX,
		PlayerX, PlayerO, PlayerX,
	}

	// When: classifying the board
	outcome := board.Outcome()

	// Then: it is a draw, never in progress
	assert.True(t, board.IsFull())
	assert.Equal(t, Outcome{Status: StatusDraw}, outcome)
	assert.True(t, outcome.IsFinished())
}

func TestBoard_EmptyIndices(t *testing.T) {
	// Given: a partially filled board
	board := Board{
		PlayerX, EmptyCell, EmptyCell,
		PlayerO, PlayerO, EmptyCell,
		EmptyCell, PlayerX, EmptyCell,
	}

	// When: listing the free cells
	indices := board.EmptyIndices()

	// Then: they come in ascending order
	assert.Equal(t, []int{1, 2, 5, 6, 8}, indices)

	board.Reset()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, board.EmptyIndices())
	assert.False(t, board.IsFull())
}
