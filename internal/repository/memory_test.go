package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a copy of the game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		// Given: a stored game
		game := newHardGame(t, "abc")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps mutating its own value
		game.Board[0] = entity.PlayerX

		// Then: the stored board is unaffected
		stored, err := gameRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, stored.Board[0])

		// And: mutating the returned value does not leak back either
		stored.Board[1] = entity.PlayerO
		again, err := gameRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, again.Board[1])
	})

	t.Run("Not found", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		_, err := gameRepo.GetByID(ctx, "missing")
		assert.Equal(t, ErrGameNotFound, err)

		assert.Equal(t, ErrGameNotFound, gameRepo.DeleteByID(ctx, "missing"))
	})

	t.Run("Delete", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newHardGame(t, "abc")))

		require.NoError(t, gameRepo.DeleteByID(ctx, "abc"))

		_, err := gameRepo.GetByID(ctx, "abc")
		assert.Equal(t, ErrGameNotFound, err)
	})
}

func TestMemoryGameRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the changed game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newHardGame(t, "abc")))

		updated, err := gameRepo.Update(ctx, "abc", func(game *entity.Game) error {
			game.Board[12] = entity.PlayerX
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, updated.Board[12])

		stored, err := gameRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, stored.Board[12])
	})

	t.Run("Callback error leaves the stored game untouched", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newHardGame(t, "abc")))

		errRejected := errors.New("rejected")
		updated, err := gameRepo.Update(ctx, "abc", func(game *entity.Game) error {
			game.Board[0] = entity.PlayerO
			return errRejected
		})

		require.ErrorIs(t, err, errRejected)
		assert.Nil(t, updated)

		stored, err := gameRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, stored.Board[0])
	})

	t.Run("Not found", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		_, err := gameRepo.Update(ctx, "missing", func(*entity.Game) error { return nil })

		assert.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("Concurrent updates are not lost", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newHardGame(t, "abc")))

		// Given: every writer fills the first empty cell it sees
		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := gameRepo.Update(ctx, "abc", func(game *entity.Game) error {
					for i, mark := range game.Board {
						if mark == entity.EmptyCell {
							game.Board[i] = entity.PlayerX
							return nil
						}
					}
					return errors.New("board is full")
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// Then: every write landed on its own cell
		stored, err := gameRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		for _, mark := range stored.Board {
			assert.Equal(t, entity.PlayerX, mark)
		}
	})
}
