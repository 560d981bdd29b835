package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

const (
	actionGameNew        = "game:new"
	actionGameGet        = "game:get"
	actionGameTurn       = "game:turn"
	actionGameRefresh    = "game:refresh"
	actionGameDifficulty = "game:difficulty"
	actionGameLeave      = "game:leave"
	actionError          = "error"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the arguments of a client request.
type Payload struct {
	GameID     string `json:"game_id,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Cell       *int   `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game   *entity.Game `json:"game,omitempty"`
	GameID string       `json:"game_id,omitempty"`
	Error  string       `json:"error,omitempty"`
}
