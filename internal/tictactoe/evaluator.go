package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

type OutcomeState string

const (
	OutcomeOngoing OutcomeState = "ongoing"
	OutcomeWon     OutcomeState = "won"
	OutcomeDrawn   OutcomeState = "drawn"
)

// Outcome is the verdict on a board. Winner is set only for OutcomeWon.
type Outcome struct {
	State  OutcomeState `json:"state"`
	Winner string       `json:"winner,omitempty"`
}

// Evaluate - reports whether a mark completed a line, the board is full, or play goes on.
func Evaluate(board []string, lineSet LineSet) (Outcome, error) {
	if err := validateDimensions(board, lineSet); err != nil {
		return Outcome{}, err
	}

	for _, line := range lineSet.Lines {
		if mark, ok := lineOwner(board, line); ok {
			return Outcome{State: OutcomeWon, Winner: mark}, nil
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return Outcome{State: OutcomeOngoing}, nil
		}
	}

	return Outcome{State: OutcomeDrawn}, nil
}

func validateDimensions(board []string, lineSet LineSet) error {
	if lineSet.Size <= 0 || lineSet.Run <= 0 {
		return fmt.Errorf("%w: line set has no dimension", apperror.ErrDimensionMismatch)
	}

	if len(lineSet.Lines) == 0 {
		return fmt.Errorf("%w: line set has no lines", apperror.ErrDimensionMismatch)
	}

	if len(board) != lineSet.Size*lineSet.Size {
		return fmt.Errorf("%w: board has %d cells, lines expect %dx%d",
			apperror.ErrDimensionMismatch, len(board), lineSet.Size, lineSet.Size)
	}

	for _, line := range lineSet.Lines {
		if len(line) != lineSet.Run {
			return fmt.Errorf("%w: line %v is not %d long", apperror.ErrDimensionMismatch, line, lineSet.Run)
		}

		for _, index := range line {
			if index < 0 || index >= len(board) {
				return fmt.Errorf("%w: line %v leaves the board", apperror.ErrDimensionMismatch, line)
			}
		}
	}

	return nil
}

// lineOwner returns the mark occupying every cell of the line.
func lineOwner(board []string, line Line) (string, bool) {
	mark := board[line[0]]
	if mark == entity.EmptyCell {
		return "", false
	}

	for _, index := range line[1:] {
		if board[index] != mark {
			return "", false
		}
	}

	return mark, true
}
