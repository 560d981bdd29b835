package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository"
)

var errInvalidBody = errors.New("invalid request body")

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) lines(w http.ResponseWriter, r *http.Request) {
	difficulty, err := entity.ParseDifficulty(chi.URLParam(r, "difficulty"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	lineSet, err := that.gameUseCase.Lines(difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, lineSet)
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req difficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, errInvalidBody)
		return
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.gameUseCase.CreateGame(r.Context(), difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) endGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameUseCase.EndGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, errInvalidBody)
		return
	}

	if req.Cell == nil {
		that.writeError(w, apperror.ErrInvalidCell)
		return
	}

	game, err := that.gameUseCase.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) refresh(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.Refresh(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) changeDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, errInvalidBody)
		return
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.gameUseCase.ChangeDifficulty(r.Context(), chi.URLParam(r, "id"), difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrDimensionMismatch):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, repository.ErrConcurrentUpdate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
