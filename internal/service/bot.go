package service

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1
)

type BotService interface {
	BestMove(board *entity.Board) (int, error)
}

// botService searches the whole game tree with plain minimax. The bot's mark maximizes.
type botService struct {
	maximizer entity.Mark
	minimizer entity.Mark
}

func NewBotService(mark entity.Mark) BotService {
	return &botService{
		maximizer: mark,
		minimizer: mark.Opponent(),
	}
}

// BestMove - returns the first cell, in ascending order, that reaches the highest minimax score.
// A cell that completes a line right away is taken before searching.
// The board is explored in place and is left exactly as it was given.
func (that *botService) BestMove(board *entity.Board) (int, error) {
	if _, ok := board.Winner(); ok {
		return -1, apperror.ErrGameFinished
	}

	if board.IsFull() {
		return -1, ErrNoAvailableMoves
	}

	if index, ok := that.winningMove(board); ok {
		return index, nil
	}

	bestScore := math.MinInt
	move := -1

	for _, index := range board.EmptyIndices() {
		score := that.try(board, index, that.maximizer, func() int {
			return that.value(board, false)
		})

		if score > bestScore {
			bestScore = score
			move = index
		}
	}

	return move, nil
}

func (that *botService) winningMove(board *entity.Board) (int, bool) {
	for _, index := range board.EmptyIndices() {
		won := that.try(board, index, that.maximizer, func() int {
			if board.HasWon(that.maximizer) {
				return scoreWin
			}
			return scoreDraw
		})

		if won == scoreWin {
			return index, true
		}
	}

	return -1, false
}

func (that *botService) value(board *entity.Board, maximizing bool) int {
	switch {
	case board.HasWon(that.maximizer):
		return scoreWin
	case board.HasWon(that.minimizer):
		return scoreLoss
	case board.IsFull():
		return scoreDraw
	}

	if maximizing {
		best := math.MinInt
		for _, index := range board.EmptyIndices() {
			best = max(best, that.try(board, index, that.maximizer, func() int {
				return that.value(board, false)
			}))
		}
		return best
	}

	best := math.MaxInt
	for _, index := range board.EmptyIndices() {
		best = min(best, that.try(board, index, that.minimizer, func() int {
			return that.value(board, true)
		}))
	}
	return best
}

// try places mark at index for the duration of evaluate and always clears it again.
func (that *botService) try(board *entity.Board, index int, mark entity.Mark, evaluate func() int) int {
	board[index] = mark
	defer func() {
		board[index] = entity.EmptyCell
	}()

	return evaluate()
}
