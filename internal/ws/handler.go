package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/fourway/internal/games"
	"github.com/lk16/fourway/internal/models"
)

const (
	eventTimeout = 30 * time.Second
)

var errUnknownEvent = errors.New("unknown event")

// Conn is the part of a websocket connection used by the Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	manager *games.Manager
	ws      Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, manager *games.Manager) *Handler {
	return &Handler{manager: manager, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// HandleMessage runs one event. Errors of the game itself, like an illegal move,
// are returned in the Outgoing message. Only malformed messages return an error.
func (h *Handler) HandleMessage(ctx context.Context, req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	var (
		game models.GameResponse
		err  error
	)

	switch req.Event {
	case "new_game":
		var data NewGameRequest
		if err = unmarshalData(req, &data); err != nil {
			return nil, err
		}
		game, err = h.manager.Create(ctx, data)
	case "get_game":
		var data GameRequest
		if err = unmarshalData(req, &data); err != nil {
			return nil, err
		}
		game, err = h.manager.Get(ctx, data.GameID)
	case "move":
		var data MoveRequest
		if err = unmarshalData(req, &data); err != nil {
			return nil, err
		}
		game, err = h.manager.Move(ctx, data.GameID, data.Move)
	case "pass":
		var data GameRequest
		if err = unmarshalData(req, &data); err != nil {
			return nil, err
		}
		game, err = h.manager.Pass(ctx, data.GameID)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownEvent, req.Event)
	}

	if err != nil {
		return &Outgoing{ID: req.ID, Error: err.Error()}, nil
	}

	return &Outgoing{ID: req.ID, Data: game}, nil
}

func unmarshalData(req *Incoming, target any) error {
	if len(req.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(req.Data, target); err != nil {
		return fmt.Errorf("ws %s unmarshal error: %w", req.Event, err)
	}

	return nil
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		respData, err := h.HandleMessage(ctx, req)
		cancel()

		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}
