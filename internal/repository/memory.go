package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

type memoryGame struct {
	mu    sync.Mutex
	games map[string]entity.Game
}

// NewMemoryGameRepository - keeps games in process memory, for local runs without Redis.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored := *game
	stored.GameState = game.GameState.Clone()
	that.games[game.ID] = stored

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.games[id]
	if !ok {
		return &entity.Game{}, ErrGameNotFound
	}

	game := stored
	game.GameState = stored.GameState.Clone()

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

func (that *memoryGame) Update(_ context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	game := stored
	game.GameState = stored.GameState.Clone()

	if err := fn(&game); err != nil {
		return nil, err
	}

	saved := game
	saved.GameState = game.GameState.Clone()
	that.games[id] = saved

	return &game, nil
}
