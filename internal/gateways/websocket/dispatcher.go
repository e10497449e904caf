package websocket

import (
	"encoding/json"

	"backend/internal/app/board"
	"backend/internal/config"
	"backend/internal/utils"

	"go.uber.org/zap"
)

// Dispatcher is the event router: one inbound frame resolves to exactly one
// handler from a closed set. Unrecognized events are dropped, never errored.
type Dispatcher struct {
	boards            board.Service
	hub               *Hub
	logger            *zap.SugaredLogger
	defaultBoardTitle string
	broadcastDeletes  bool
	maxMessageSize    int64
}

func NewDispatcher(boards board.Service, hub *Hub, cfg *config.Config, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		boards:            boards,
		hub:               hub,
		logger:            logger.Sugar(),
		defaultBoardTitle: cfg.DefaultBoardTitle,
		broadcastDeletes:  cfg.BroadcastDeletes,
		maxMessageSize:    cfg.MaxMessageSize,
	}
}

func (d *Dispatcher) Dispatch(c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		d.logger.Debugw("Dropping unparsable frame", "client_id", c.ID, "error", err)
		return
	}

	switch env.Event {
	case EventCreateCanvas:
		d.handleCreateCanvas(c, env.Data)
	case EventCanvasImage:
		d.handleCanvasImage(c, env.Data)
	case EventClearCanvas:
		d.handleClearCanvas(c, env.Data)
	case EventDeleteCanvas:
		d.handleDeleteCanvas(c, env.Data)
	case EventGetAllBoards:
		d.handleGetAllBoards(c)
	case EventGetCanvasByID:
		d.handleGetCanvasByID(c, env.Data)
	case EventDisconnect:
		d.handleDisconnect(c)
	default:
		d.logger.Debugw("Ignoring unrecognized event", "event", env.Event, "client_id", c.ID)
	}
}

// sendTo delivers a direct response to the originating client only.
func (d *Dispatcher) sendTo(c *Client, event string, data interface{}) {
	payload, err := json.Marshal(utils.Event{Event: event, Data: data})
	if err != nil {
		d.logger.Errorw("Failed to marshal response", "event", event, "error", err)
		return
	}
	if !c.enqueue(payload) {
		d.logger.Warnw("Dropped response, client buffer full", "event", event, "client_id", c.ID)
	}
}

func (d *Dispatcher) sendError(c *Client, message string) {
	d.sendTo(c, EventError, ErrorPayload{Message: message})
}
