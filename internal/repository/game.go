package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrConcurrentUpdate = errors.New("game was changed by another request")
)

// maxUpdateAttempts bounds optimistic retries of Update when the key keeps changing underneath.
const maxUpdateAttempts = 5

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	// Update loads the game, applies fn and stores the result atomically with respect to other writers.
	// An error from fn aborts the update and nothing is stored.
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - stores games in Redis. Every write resets the key expiry to ttl; zero keeps keys forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKey(game.ID), gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

// Update - optimistic read-modify-write: WATCH the key, apply fn, write inside MULTI. Retried if the key changed.
func (that *dbGame) Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKey(id)

	var updated *entity.Game

	txf := func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrGameNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to get game by id: %w", err)
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(response), &game); err != nil {
			return fmt.Errorf("failed to unmarshal game: %w", err)
		}

		if err = fn(&game); err != nil {
			return err
		}

		gameJSON, err := json.Marshal(&game)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, that.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &game

		return nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return updated, nil
	}

	return nil, ErrConcurrentUpdate
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
