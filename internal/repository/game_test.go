package repository

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHardGame(t *testing.T, id string) *entity.Game {
	t.Helper()

	state, err := entity.NewGameState(entity.HardDifficulty)
	require.NoError(t, err)

	return &entity.Game{ID: id, GameState: state, UpdatedAt: time.Now().UTC().Truncate(time.Second)}
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Client(), time.Hour)

	// Given: a new hard game
	game := newHardGame(t, "123")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and the key expires within the ttl
	require.NoError(t, err)

	ttl, err := st.Client().TTL(ctx, "game:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), 0)

		// Given: a stored game with a mark on the board
		game := newHardGame(t, "123")
		game.Board[12] = entity.PlayerX
		game.Turn = entity.PlayerO

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game.GameState, retrievedGame.GameState)
		assert.True(t, game.UpdatedAt.Equal(retrievedGame.UpdatedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), 0)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), 0)

		// Given: a stored game
		game := newHardGame(t, "123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		assert.Equal(t, ErrGameNotFound, err)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), 0)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.Equal(t, ErrGameNotFound, err)
	})
}

func TestGameRepository_Update(t *testing.T) {
	t.Run("Update_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), time.Hour)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newHardGame(t, "123")))

		// When: Update places a mark
		updated, err := gameRepo.Update(ctx, "123", func(game *entity.Game) error {
			game.Board[12] = entity.PlayerX
			game.Turn = entity.PlayerO
			return nil
		})

		// Then: the stored game carries the mark and the expiry is kept
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, updated.Board[12])

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, updated.GameState, stored.GameState)

		ttl, err := st.Client().TTL(ctx, "game:123").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("Update_CallbackError", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), 0)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newHardGame(t, "123")))

		errRejected := errors.New("rejected")
		_, err := gameRepo.Update(ctx, "123", func(game *entity.Game) error {
			game.Board[0] = entity.PlayerO
			return errRejected
		})
		require.ErrorIs(t, err, errRejected)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, stored.Board[0])
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), 0)

		_, err := gameRepo.Update(ctx, "9999999", func(*entity.Game) error { return nil })

		assert.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("Update_RetriesAfterConcurrentWrite", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), 0)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newHardGame(t, "123")))

		// Given: another writer takes cell 0 while the first attempt is in flight
		other := newHardGame(t, "123")
		other.Board[0] = entity.PlayerX
		other.Turn = entity.PlayerO

		calls := 0
		updated, err := gameRepo.Update(ctx, "123", func(game *entity.Game) error {
			calls++
			if calls == 1 {
				require.NoError(t, gameRepo.CreateOrUpdate(ctx, other))
			}

			game.Board[1] = game.Turn
			return nil
		})

		// Then: the second attempt sees the other write and both marks survive
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, entity.PlayerX, updated.Board[0])
		assert.Equal(t, entity.PlayerO, updated.Board[1])

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, updated.GameState, stored.GameState)
	})

	t.Run("Update_GivesUpWhenKeyKeepsChanging", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), 0)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newHardGame(t, "123")))

		calls := 0
		_, err := gameRepo.Update(ctx, "123", func(game *entity.Game) error {
			calls++
			require.NoError(t, st.Client().Set(ctx, "game:123", mustJSON(t, game), 0).Err())
			return nil
		})

		assert.ErrorIs(t, err, ErrConcurrentUpdate)
		assert.Equal(t, maxUpdateAttempts, calls)
	})
}

func mustJSON(t *testing.T, game *entity.Game) []byte {
	t.Helper()

	gameJSON, err := json.Marshal(game)
	require.NoError(t, err)

	return gameJSON
}
