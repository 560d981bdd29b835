package apperror

import "errors"

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrDimensionMismatch = errors.New("board does not match line set dimension")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameFinished      = errors.New("game is already finished")
	ErrUnknownAction     = errors.New("unknown action")
)
