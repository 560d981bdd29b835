package application

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-grid/internal/config"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

func TestNewGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory driver", func(t *testing.T) {
		conf := &config.Config{StorageDriver: config.StorageMemory}

		gameRepo, closeRepo, err := newGameRepository(ctx, conf)
		require.NoError(t, err)
		defer func() { assert.NoError(t, closeRepo()) }()

		game := &entity.Game{ID: "g1"}
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		stored, err := gameRepo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "g1", stored.ID)
	})

	t.Run("Redis driver without host", func(t *testing.T) {
		conf := &config.Config{StorageDriver: config.StorageRedis}

		_, _, err := newGameRepository(ctx, conf)

		assert.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conf := &config.Config{StorageDriver: "postgres"}

		_, _, err := newGameRepository(ctx, conf)

		assert.ErrorIs(t, err, ErrUnknownStorageDriver)
	})
}

func TestRunApp_InvalidLineStrategy(t *testing.T) {
	conf := &config.Config{LineStrategy: "diagonal-only", StorageDriver: config.StorageMemory}

	err := RunApp(slog.New(slog.NewTextHandler(io.Discard, nil)), conf)

	assert.ErrorIs(t, err, tictactoe.ErrUnknownStrategy)
}
