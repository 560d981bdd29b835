package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, payload Payload) (ResponsePayload, error) {
	difficulty, err := entity.ParseDifficulty(payload.Difficulty)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.gameUseCase.CreateGame(ctx, difficulty)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to create a new game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "difficulty", difficulty)

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, payload Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	game, err := that.gameUseCase.GetGame(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, payload Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	if payload.Cell == nil {
		return ResponsePayload{}, errCellRequired
	}

	game, err := that.gameUseCase.MakeTurn(ctx, payload.GameID, *payload.Cell)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameRefresh(ctx context.Context, payload Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	game, err := that.gameUseCase.Refresh(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameDifficulty(ctx context.Context, payload Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	difficulty, err := entity.ParseDifficulty(payload.Difficulty)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.gameUseCase.ChangeDifficulty(ctx, payload.GameID, difficulty)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameLeave(ctx context.Context, payload Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	if err := that.gameUseCase.EndGame(ctx, payload.GameID); err != nil {
		return ResponsePayload{}, err
	}

	that.logger.Info("game left", "gameID", payload.GameID)

	return ResponsePayload{GameID: payload.GameID}, nil
}

// isClientError reports whether err is caused by the request and can be shown to the client as is.
func isClientError(err error) bool {
	for _, target := range []error{
		errGameIDRequired,
		errCellRequired,
		apperror.ErrInvalidDifficulty,
		apperror.ErrInvalidCell,
		apperror.ErrCellOccupied,
		apperror.ErrGameFinished,
		apperror.ErrDimensionMismatch,
		repository.ErrGameNotFound,
		repository.ErrConcurrentUpdate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
