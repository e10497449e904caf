package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHub(bus *utils.EventBus) *Hub {
	hub := NewHub(zap.NewNop(), bus)
	go hub.Run()
	return hub
}

func addClient(hub *Hub) *Client {
	c := newClient(hub, nil)
	hub.register <- c
	return c
}

// recvEvent waits for one frame on the client's outbound channel.
func recvEvent(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case payload, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var env Envelope
		require.NoError(t, json.Unmarshal(payload, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return Envelope{}
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case payload := <-c.send:
		t.Fatalf("unexpected frame: %s", payload)
	default:
	}
}

func TestBroadcastExcept(t *testing.T) {
	hub := newTestHub(nil)
	sender := addClient(hub)
	other1 := addClient(hub)
	other2 := addClient(hub)

	hub.BroadcastExcept(sender, EventCanvasImage, CanvasImagePayload{BoardID: 1, Data: "stroke"})

	for _, c := range []*Client{other1, other2} {
		env := recvEvent(t, c)
		assert.Equal(t, EventCanvasImage, env.Event)
	}

	assertNoEvent(t, sender)
	assertNoEvent(t, other1)
	assertNoEvent(t, other2)
}

func TestBroadcastIncludesSender(t *testing.T) {
	hub := newTestHub(nil)
	a := addClient(hub)
	b := addClient(hub)

	hub.Broadcast(EventDeleteCanvas, BoardRefPayload{BoardID: 7})

	for _, c := range []*Client{a, b} {
		env := recvEvent(t, c)
		assert.Equal(t, EventDeleteCanvas, env.Event)
	}
}

func TestUnregisterRemovesRecipient(t *testing.T) {
	hub := newTestHub(nil)
	stays := addClient(hub)
	leaves := addClient(hub)

	hub.unregister <- leaves
	hub.Broadcast(EventCanvasImage, CanvasImagePayload{BoardID: 1, Data: "x"})

	env := recvEvent(t, stays)
	assert.Equal(t, EventCanvasImage, env.Event)

	// The departed client's channel is closed and drained of nothing.
	select {
	case _, ok := <-leaves.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("departed client's send channel was not closed")
	}
}

func TestBusEventsFanOutToEveryone(t *testing.T) {
	bus := utils.NewEventBus()
	hub := newTestHub(bus)
	a := addClient(hub)
	b := addClient(hub)

	bus.Publish("boardDeleted", BoardRefPayload{BoardID: 3})

	for _, c := range []*Client{a, b} {
		env := recvEvent(t, c)
		assert.Equal(t, "boardDeleted", env.Event)

		var ref BoardRefPayload
		require.NoError(t, json.Unmarshal(env.Data, &ref))
		assert.Equal(t, uint64(3), ref.BoardID)
	}
}

func TestSlowConsumerIsDropped(t *testing.T) {
	hub := newTestHub(nil)
	slow := addClient(hub)

	// The client never reads; once its buffer overflows it is evicted
	// instead of blocking the hub loop.
	for i := 0; i < sendBufferSize+1; i++ {
		hub.Broadcast(EventCanvasImage, CanvasImagePayload{BoardID: 1, Data: "x"})
	}

	require.Eventually(t, func() bool {
		slow.mu.Lock()
		defer slow.mu.Unlock()
		return slow.closed
	}, time.Second, 10*time.Millisecond)
}
