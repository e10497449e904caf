package websocket

import (
	"encoding/json"

	"backend/internal/utils"

	"go.uber.org/zap"
)

type outbound struct {
	payload []byte
	exclude *Client // nil broadcasts to every client
}

// Hub owns the live client set and is the only place that enumerates it.
// Registration, unregistration and fan-out all pass through the Run loop,
// so the recipient set of an in-flight broadcast is a consistent snapshot.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewHub(logger *zap.Logger, eventBus *utils.EventBus) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 64),
		eventBus:   eventBus,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket Hub started")

	var busCh <-chan utils.Event
	if h.eventBus != nil {
		busCh = h.eventBus.SubscribeCh()
	}

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case msg := <-h.broadcast:
			h.deliver(msg)

		case ev := <-busCh:
			// Mutations arriving over REST have no originating session, so
			// they fan out to everyone.
			payload, err := json.Marshal(ev)
			if err != nil {
				h.logger.Errorw("Failed to marshal bus event", "event", ev.Event, "error", err)
				continue
			}
			h.deliver(outbound{payload: payload})
		}
	}
}

func (h *Hub) deliver(msg outbound) {
	for client := range h.clients {
		if client == msg.exclude {
			continue
		}
		if !client.enqueue(msg.payload) {
			// Slow consumer: evict rather than block the loop.
			delete(h.clients, client)
			client.closeSend()
			if client.conn != nil {
				client.conn.Close()
			}
			h.logger.Warnw("Client dropped, send buffer full", "client_id", client.ID)
		}
	}
}

// BroadcastExcept delivers an event to every live client except the sender.
func (h *Hub) BroadcastExcept(sender *Client, event string, data interface{}) {
	payload, err := json.Marshal(utils.Event{Event: event, Data: data})
	if err != nil {
		h.logger.Errorw("Failed to marshal broadcast", "event", event, "error", err)
		return
	}
	h.broadcast <- outbound{payload: payload, exclude: sender}
}

// Broadcast delivers an event to every live client, sender included.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(utils.Event{Event: event, Data: data})
	if err != nil {
		h.logger.Errorw("Failed to marshal broadcast", "event", event, "error", err)
		return
	}
	h.broadcast <- outbound{payload: payload}
}
