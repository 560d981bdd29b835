package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	MessageStart = "Start the Game!!!"
	MessageDraw  = "DRAW"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// GameState is everything the board view needs to render one moment of a game.
type GameState struct {
	Difficulty Difficulty `json:"difficulty"`
	Board      []string   `json:"board"`
	Turn       string     `json:"player_turn"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	Winner     string     `json:"winner"`
}

// Game is a stored session: a state under an ID.
type Game struct {
	ID string `json:"id"`
	GameState
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGameState - returns an empty board for the difficulty with X to move.
func NewGameState(difficulty Difficulty) (GameState, error) {
	size, _, err := difficulty.Dimensions()
	if err != nil {
		return GameState{}, err
	}

	board := make([]string, size*size)
	for i := range board {
		board[i] = EmptyCell
	}

	return GameState{
		Difficulty: difficulty,
		Board:      board,
		Turn:       PlayerX,
		Message:    MessageStart,
		Status:     StatusOngoing,
	}, nil
}

func TurnMessage(mark string) string {
	return "TURN: " + mark
}

func WonMessage(mark string) string {
	return "WON: " + mark
}

// Clone - returns a copy that shares no memory with the receiver.
func (that GameState) Clone() GameState {
	clone := that
	clone.Board = append([]string(nil), that.Board...)

	return clone
}

func (that GameState) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that GameState) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that GameState) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
