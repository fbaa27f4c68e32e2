package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestBotService_BestMove(t *testing.T) {
	bot := NewBotService(o)

	t.Run("Empty board opens in the first cell", func(t *testing.T) {
		// Given: an empty board with the bot to move
		board := entity.Board{}

		// When: the bot picks its move
		move, err := bot.BestMove(&board)

		// Then: every opening scores a draw, so the earliest cell is kept
		require.NoError(t, err)
		assert.Equal(t, 0, move)
	})

	t.Run("Completes its own line", func(t *testing.T) {
		// Given: O has two in the middle row and X two in the top row
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: the bot picks its move
		move, err := bot.BestMove(&board)
		require.NoError(t, err)

		// Then: it wins at once
		assert.Equal(t, 5, move)

		require.NoError(t, board.Place(move, o))
		assert.Equal(t, entity.Outcome{Status: entity.StatusWin, Winner: o}, board.Outcome())
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: X threatens the top row
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		// When: the bot picks its move
		move, err := bot.BestMove(&board)

		// Then: it blocks
		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Leaves the board untouched", func(t *testing.T) {
		// Given: a mid-game board
		board := entity.Board{
			x, e, e,
			e, o, e,
			e, e, x,
		}
		before := board

		// When: the bot searches
		_, err := bot.BestMove(&board)

		// Then: the board is identical to what it was
		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Same board gives the same move", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}

		first, err := bot.BestMove(&board)
		require.NoError(t, err)

		for range 3 {
			move, err := bot.BestMove(&board)
			require.NoError(t, err)
			assert.Equal(t, first, move)
		}
	})

	t.Run("Error on full board", func(t *testing.T) {
		board := entity.Board{
			o, x, o,
			o, x, x,
			x, o, x,
		}

		_, err := bot.BestMove(&board)

		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		_, err := bot.BestMove(&board)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Plays the X side as well", func(t *testing.T) {
		// Given: a bot playing X that can finish the left column
		bot := NewBotService(x)
		board := entity.Board{
			x, o, o,
			x, e, e,
			e, e, e,
		}

		// When: the bot picks its move
		move, err := bot.BestMove(&board)

		// Then: it wins
		require.NoError(t, err)
		assert.Equal(t, 6, move)
	})
}

// solver is a memoised minimax to check the bot against. One solver per opener,
// since the side to move follows from the board only once the opener is known.
type solver struct {
	cache map[entity.Board]int
}

func (that *solver) value(board entity.Board, toMove entity.Mark) int {
	if board.HasWon(o) {
		return 1
	}
	if board.HasWon(x) {
		return -1
	}
	if board.IsFull() {
		return 0
	}

	if cached, ok := that.cache[board]; ok {
		return cached
	}

	best := -2
	if toMove == x {
		best = 2
	}
	for _, index := range board.EmptyIndices() {
		child := board
		child[index] = toMove
		score := that.value(child, toMove.Opponent())
		if toMove == o {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	that.cache[board] = best

	return best
}

func TestBotService_NeverPlaysSuboptimal(t *testing.T) {
	if testing.Short() {
		t.Skip("walks every reachable position")
	}

	bot := NewBotService(o)

	for _, opener := range []entity.Mark{x, o} {
		ref := &solver{cache: map[entity.Board]int{}}
		visited := map[entity.Board]bool{}
		checked := 0

		var walk func(board entity.Board, toMove entity.Mark)
		walk = func(board entity.Board, toMove entity.Mark) {
			if visited[board] || board.Outcome().IsFinished() {
				return
			}
			visited[board] = true

			if toMove == o {
				before := board
				move, err := bot.BestMove(&board)
				require.NoError(t, err)
				require.Equal(t, before, board)

				child := board
				child[move] = o
				require.Equal(t, ref.value(board, o), ref.value(child, x),
					"opener %s board %v move %d", opener, board, move)
				checked++
			}

			for _, index := range board.EmptyIndices() {
				child := board
				child[index] = toMove
				walk(child, toMove.Opponent())
			}
		}

		walk(entity.Board{}, opener)

		assert.Positive(t, checked)
	}
}
