package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"backend/internal/app/board"
)

// Per-event synchronization policy. Every handler follows the same shape:
// store operation first, broadcast second, so a client that receives a
// rebroadcast can rely on the store already reflecting it. A store failure
// on a broadcast path skips the broadcast instead of claiming persisted
// state that isn't there.

// handleCreateCanvas creates a board unless the title is taken, in which
// case the event is dropped with no signal to the originator. The
// title-existence check and the insert are not atomic: two interleaved
// creates for one title can both pass the check and produce duplicates.
func (d *Dispatcher) handleCreateCanvas(c *Client, data json.RawMessage) {
	var p CreateCanvasPayload
	if err := json.Unmarshal(data, &p); err != nil {
		d.logger.Debugw("Dropping malformed createCanvas", "client_id", c.ID, "error", err)
		return
	}

	b, created, err := d.boards.CreateBoard(context.Background(), p.Title, p.CanvasData)
	if err != nil {
		d.logger.Errorw("Create board failed, skipping broadcast", "title", p.Title, "error", err)
		return
	}
	if !created {
		return
	}

	d.hub.BroadcastExcept(c, EventNewCanvas, b)
}

// handleCanvasImage replaces a board's content with the supplied snapshot
// and rebroadcasts it to everyone else. An edit to a nonexistent board is
// dropped silently. Legacy clients send a bare data string with no board
// id; those edits land on the default board, created on first use.
func (d *Dispatcher) handleCanvasImage(c *Client, data json.RawMessage) {
	p, ok := decodeCanvasImage(data)
	if !ok {
		d.logger.Debugw("Dropping malformed canvasImage", "client_id", c.ID)
		return
	}

	ctx := context.Background()
	if p.BoardID == 0 {
		def, err := d.boards.EnsureBoard(ctx, d.defaultBoardTitle)
		if err != nil {
			d.logger.Errorw("Default board unavailable, skipping broadcast", "error", err)
			return
		}
		p.BoardID = def.ID
	}

	if _, err := d.boards.UpdateContent(ctx, p.BoardID, p.Data); err != nil {
		if errors.Is(err, board.ErrBoardNotFound) {
			return
		}
		d.logger.Errorw("Canvas update failed, skipping broadcast", "board_id", p.BoardID, "error", err)
		return
	}

	d.hub.BroadcastExcept(c, EventCanvasImage, p)
}

// handleClearCanvas resets a board's content to empty. The rebroadcast
// carries only the board id, not content.
func (d *Dispatcher) handleClearCanvas(c *Client, data json.RawMessage) {
	var p BoardRefPayload
	if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
		if err := json.Unmarshal(data, &p); err != nil {
			d.logger.Debugw("Dropping malformed clearCanvas", "client_id", c.ID, "error", err)
			return
		}
	}

	ctx := context.Background()
	if p.BoardID == 0 {
		def, err := d.boards.EnsureBoard(ctx, d.defaultBoardTitle)
		if err != nil {
			d.logger.Errorw("Default board unavailable, skipping broadcast", "error", err)
			return
		}
		p.BoardID = def.ID
	}

	if _, err := d.boards.ClearContent(ctx, p.BoardID); err != nil {
		if errors.Is(err, board.ErrBoardNotFound) {
			return
		}
		d.logger.Errorw("Canvas clear failed, skipping broadcast", "board_id", p.BoardID, "error", err)
		return
	}

	d.hub.BroadcastExcept(c, EventClearCanvas, p)
}

// handleDeleteCanvas deletes a board and confirms to the originator only,
// unless deletions are configured to broadcast to every session.
func (d *Dispatcher) handleDeleteCanvas(c *Client, data json.RawMessage) {
	var p BoardRefPayload
	if err := json.Unmarshal(data, &p); err != nil {
		d.logger.Debugw("Dropping malformed deleteCanvas", "client_id", c.ID, "error", err)
		return
	}

	if err := d.boards.DeleteBoard(context.Background(), p.BoardID); err != nil {
		if errors.Is(err, board.ErrBoardNotFound) {
			return
		}
		d.logger.Errorw("Board delete failed", "board_id", p.BoardID, "error", err)
		d.sendError(c, "failed to delete board")
		return
	}

	if d.broadcastDeletes {
		d.hub.Broadcast(EventDeleteCanvas, p)
	} else {
		d.sendTo(c, EventDeleteCanvas, p)
	}
}

// handleGetAllBoards answers the originator only. Never broadcast.
func (d *Dispatcher) handleGetAllBoards(c *Client) {
	boards, err := d.boards.GetAllBoards(context.Background())
	if err != nil {
		d.logger.Errorw("Board list failed", "error", err)
		d.sendError(c, "failed to fetch boards")
		return
	}
	d.sendTo(c, EventAllBoards, boards)
}

// handleGetCanvasByID answers the originator only: the full board on
// success, canvasNotFound on absence. Never broadcast.
func (d *Dispatcher) handleGetCanvasByID(c *Client, data json.RawMessage) {
	var p BoardRefPayload
	if err := json.Unmarshal(data, &p); err != nil {
		d.logger.Debugw("Dropping malformed getCanvasById", "client_id", c.ID, "error", err)
		return
	}

	b, err := d.boards.GetBoardByID(context.Background(), p.BoardID)
	if err != nil {
		if errors.Is(err, board.ErrBoardNotFound) {
			d.sendTo(c, EventCanvasNotFound, p)
			return
		}
		d.logger.Errorw("Board fetch failed", "board_id", p.BoardID, "error", err)
		d.sendError(c, "failed to fetch board")
		return
	}

	d.sendTo(c, EventCanvasData, b)
}

// handleDisconnect tears the session down with no board side effect. The
// read pump's exit path performs the actual unregistration.
func (d *Dispatcher) handleDisconnect(c *Client) {
	if c.conn != nil {
		c.conn.Close()
		return
	}
	c.hub.unregister <- c
}

// decodeCanvasImage accepts both payload shapes: {boardId, data} and the
// legacy bare string.
func decodeCanvasImage(data json.RawMessage) (CanvasImagePayload, bool) {
	var p CanvasImagePayload
	if err := json.Unmarshal(data, &p); err == nil {
		return p, true
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		return CanvasImagePayload{Data: raw}, true
	}

	return p, false
}
