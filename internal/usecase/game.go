package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

type GameUseCase interface {
	CreateGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Refresh(ctx context.Context, gameID string) (*entity.Game, error)
	ChangeDifficulty(ctx context.Context, gameID string, difficulty entity.Difficulty) (*entity.Game, error)

	Lines(difficulty entity.Difficulty) (tictactoe.LineSet, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
}

type gameUseCase struct {
	logger *slog.Logger

	gameRepo gameRepo
	lines    tictactoe.LineSource

	now func() time.Time
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo, lines tictactoe.LineSource) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game-usecase"),
		gameRepo: gameRepo,
		lines:    lines,
		now:      time.Now,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Game, error) {
	state, err := entity.NewGameState(difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game state: %w", err)
	}

	game := &entity.Game{
		ID:        uuid.NewString(),
		GameState: state,
		UpdatedAt: that.now(),
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "gameID", game.ID, "difficulty", difficulty)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) EndGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Debug("game deleted", "gameID", gameID)

	return nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	game, err := that.apply(ctx, gameID, tictactoe.Place(cell))
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "winner", game.Winner)
	}

	return game, nil
}

func (that *gameUseCase) Refresh(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.apply(ctx, gameID, tictactoe.Refresh())
	if err != nil {
		return nil, fmt.Errorf("failed to refresh game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) ChangeDifficulty(ctx context.Context, gameID string, difficulty entity.Difficulty) (*entity.Game, error) {
	game, err := that.apply(ctx, gameID, tictactoe.ChangeDifficulty(difficulty))
	if err != nil {
		return nil, fmt.Errorf("failed to change difficulty: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) Lines(difficulty entity.Difficulty) (tictactoe.LineSet, error) {
	lineSet, err := that.lines.Lines(difficulty)
	if err != nil {
		return tictactoe.LineSet{}, fmt.Errorf("failed to get lines: %w", err)
	}

	return lineSet, nil
}

// apply - runs the action through the reducer inside an atomic repository update.
func (that *gameUseCase) apply(ctx context.Context, gameID string, action tictactoe.Action) (*entity.Game, error) {
	log := that.logger.With("method", "apply", "gameID", gameID, "action", action.Kind)

	return that.gameRepo.Update(ctx, gameID, func(game *entity.Game) error {
		state, err := tictactoe.Reduce(that.lines, game.GameState, action)
		if err != nil {
			log.Debug("action rejected", "error", err)
			return err
		}

		game.GameState = state
		game.UpdatedAt = that.now()

		return nil
	})
}
