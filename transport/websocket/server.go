package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	CreateGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Refresh(ctx context.Context, gameID string) (*entity.Game, error)
	ChangeDifficulty(ctx context.Context, gameID string, difficulty entity.Difficulty) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, payload Payload) (ResponsePayload, error)

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameGet] = server.handleGetGame
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameRefresh] = server.handleGameRefresh
	server.handlers[actionGameDifficulty] = server.handleGameDifficulty
	server.handlers[actionGameLeave] = server.handleGameLeave

	return server
}

// Handler - returns the mux serving the /ws endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
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

// upgradeToWebSocket - upgrades the connection and serves it until the client leaves.
func (that *Server) upgradeToWebSocket(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Debug("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("client disconnected")
				return nil
			}

			var (
				syntaxErr *json.SyntaxError
				typeErr   *json.UnmarshalTypeError
			)
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Warn("failed to unmarshal message", "error", err)
				if err = that.sendErrorResponse(conn, actionError, "malformed message"); err != nil {
					return err
				}
				continue
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		if err := that.dispatch(ctx, conn, &message); err != nil {
			return err
		}
	}
}

// dispatch runs the handler for the message action and writes its reply.
func (that *Server) dispatch(ctx context.Context, conn *websocket.Conn, message *Message) error {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		return that.sendErrorResponse(conn, message.Action, apperror.ErrUnknownAction.Error())
	}

	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Warn("failed to unmarshal payload", "error", err)
			return that.sendErrorResponse(conn, message.Action, "malformed payload")
		}
	}

	response, err := handler(ctx, payload)
	if err != nil {
		if !isClientError(err) {
			log.Error("failed to process message", "error", err)
			return that.sendErrorResponse(conn, message.Action, "internal error")
		}

		return that.sendErrorResponse(conn, message.Action, err.Error())
	}

	return that.sendMessage(conn, message.Action, response)
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, errorMsg string) error {
	if err := that.sendMessage(conn, action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
