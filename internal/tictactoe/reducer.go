package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

type ActionKind string

const (
	ActionPlace      ActionKind = "place"
	ActionRefresh    ActionKind = "refresh"
	ActionDifficulty ActionKind = "difficulty"
)

// Action is one input from the player. Cell is read by ActionPlace, Difficulty by ActionDifficulty.
type Action struct {
	Kind       ActionKind        `json:"kind"`
	Cell       int               `json:"cell,omitempty"`
	Difficulty entity.Difficulty `json:"difficulty,omitempty"`
}

func Place(cell int) Action {
	return Action{Kind: ActionPlace, Cell: cell}
}

func Refresh() Action {
	return Action{Kind: ActionRefresh}
}

func ChangeDifficulty(difficulty entity.Difficulty) Action {
	return Action{Kind: ActionDifficulty, Difficulty: difficulty}
}

// Reduce - returns the state that follows from applying action to state. The input state is never modified.
func Reduce(lines LineSource, state entity.GameState, action Action) (entity.GameState, error) {
	switch action.Kind {
	case ActionPlace:
		return placeMark(lines, state, action.Cell)
	case ActionRefresh:
		return resetState(state, state.Difficulty)
	case ActionDifficulty:
		return resetState(state, action.Difficulty)
	default:
		return state, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, string(action.Kind))
	}
}

func resetState(state entity.GameState, difficulty entity.Difficulty) (entity.GameState, error) {
	fresh, err := entity.NewGameState(difficulty)
	if err != nil {
		return state, fmt.Errorf("failed to reset game: %w", err)
	}

	return fresh, nil
}

func placeMark(lines LineSource, state entity.GameState, cell int) (entity.GameState, error) {
	if err := state.ConfirmOngoingState(); err != nil {
		return state, err
	}

	if err := validateMove(state, cell); err != nil {
		return state, fmt.Errorf("invalid turn: %w", err)
	}

	lineSet, err := lines.Lines(state.Difficulty)
	if err != nil {
		return state, fmt.Errorf("failed to get lines: %w", err)
	}

	next := state.Clone()
	next.Board[cell] = state.Turn

	outcome, err := Evaluate(next.Board, lineSet)
	if err != nil {
		return state, fmt.Errorf("failed to evaluate board: %w", err)
	}

	applyOutcome(&next, outcome)

	return next, nil
}

// validateMove - checks that the cell exists and is free.
func validateMove(state entity.GameState, cell int) error {
	if cell < 0 || cell >= len(state.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if state.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// applyOutcome - updates status, winner, turn and message after a move.
func applyOutcome(state *entity.GameState, outcome Outcome) {
	switch outcome.State {
	case OutcomeWon:
		state.Winner = outcome.Winner
		state.Status = entity.StatusFinished
		state.Message = entity.WonMessage(outcome.Winner)
		state.Turn = ""
	case OutcomeDrawn:
		state.Winner = entity.PlayerTie
		state.Status = entity.StatusFinished
		state.Message = entity.MessageDraw
		state.Turn = ""
	default:
		state.Turn = entity.ToggleMark(state.Turn)
		state.Message = entity.TurnMessage(state.Turn)
	}
}
