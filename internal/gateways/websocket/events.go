package websocket

import "encoding/json"

// Inbound event names. Anything outside this set is ignored.
const (
	EventCreateCanvas  = "createCanvas"
	EventCanvasImage   = "canvasImage"
	EventClearCanvas   = "clearCanvas"
	EventDeleteCanvas  = "deleteCanvas"
	EventGetAllBoards  = "getAllBoards"
	EventGetCanvasByID = "getCanvasById"
	EventDisconnect    = "disconnect"
)

// Outbound event names.
const (
	EventNewCanvas      = "newCanvas"
	EventAllBoards      = "allBoards"
	EventCanvasData     = "canvasData"
	EventCanvasNotFound = "canvasNotFound"
	EventError          = "error"
)

// Envelope is the inbound wire frame: {"event": ..., "data": ...}.
// Data stays raw until the dispatcher knows which shape to decode.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type CreateCanvasPayload struct {
	Title      string `json:"title"`
	CanvasData string `json:"canvasData,omitempty"`
}

type CanvasImagePayload struct {
	BoardID uint64 `json:"boardId"`
	Data    string `json:"data"`
}

type BoardRefPayload struct {
	BoardID uint64 `json:"boardId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
