package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	CreateGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Refresh(ctx context.Context, gameID string) (*entity.Game, error)
	ChangeDifficulty(ctx context.Context, gameID string, difficulty entity.Difficulty) (*entity.Game, error)

	Lines(difficulty entity.Difficulty) (tictactoe.LineSet, error)
}

// NewServer wires routes and returns an http.Handler.
func NewServer(logger *slog.Logger, gameUseCase gameUseCase) http.Handler {
	h := &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.ping)
	r.Get("/lines/{difficulty}", h.lines)

	r.Post("/games", h.createGame)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.getGame)
		r.Delete("/", h.endGame)
		r.Post("/turn", h.makeTurn)
		r.Post("/refresh", h.refresh)
		r.Put("/difficulty", h.changeDifficulty)
	})

	return r
}

// Start - serves handler on port until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
