package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-grid/internal/config"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-grid/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-grid/transport/rest"
	"github.com/rocketscienceinc/tictactoe-grid/transport/websocket"
)

var (
	ErrAddrNotFound         = errors.New("redis address string is empty")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	strategy, err := tictactoe.ParseStrategy(conf.LineStrategy)
	if err != nil {
		return fmt.Errorf("invalid line strategy: %w", err)
	}

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close storage", "error", closeErr)
		}
	}()

	lineCache := tictactoe.NewLineCache(strategy)
	gameUseCase := usecase.NewGameUseCase(logger, gameRepo, lineCache)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, rest.NewServer(logger, gameUseCase))
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- websocket.New(logger, gameUseCase).Start(ctx, conf.SocketPort)
	}()

	// the first server to stop takes the other one down with it
	var errs []error
	for i := 0; i < 2; i++ {
		select {
		case httpErr := <-httpErrCh:
			if httpErr != nil {
				errs = append(errs, fmt.Errorf("HTTP server error: %w", httpErr))
			}
		case wsErr := <-wsErrCh:
			if wsErr != nil {
				errs = append(errs, fmt.Errorf("WebSocket server error: %w", wsErr))
			}
		}

		cancel()
	}

	log.Info("Application stopped")

	return errors.Join(errs...)
}

// newGameRepository - picks the session store for the configured driver.
func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.StorageDriver {
	case config.StorageMemory:
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, conf.StorageDriver)
	}
}
