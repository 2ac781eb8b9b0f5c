package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID uint) *Client {
	return &Client{
		Hub:    hub,
		UserID: userID,
		Send:   make(chan []byte, 8),
	}
}

func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == want
	}, time.Second, 10*time.Millisecond)
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, 1)
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	hub.Broadcast(EventOrderCreated, map[string]interface{}{"order_number": "ORD-TEST0001"})

	select {
	case msg := <-client.Send:
		var event Event
		require.NoError(t, json.Unmarshal(msg, &event))
		assert.Equal(t, EventOrderCreated, event.Type)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast event")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, 1)
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	hub.Unregister(client)
	waitForClientCount(t, hub, 0)

	// The send channel is closed so the write pump shuts down
	_, open := <-client.Send
	assert.False(t, open)
}

func TestHub_DoubleUnregisterKeepsOtherSessions(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Two sessions for the same admin
	first := newTestClient(hub, 1)
	second := newTestClient(hub, 1)
	hub.Register(first)
	hub.Register(second)
	waitForClientCount(t, hub, 2)

	// The read pump's deferred unregister can race the buffer-full
	// disconnect, delivering the same client twice
	hub.Unregister(first)
	hub.Unregister(first)
	waitForClientCount(t, hub, 1)

	// The hub survives and still serves the remaining session
	hub.Broadcast(EventOrderStatusUpdated, map[string]interface{}{"order_number": "ORD-TEST0002"})

	select {
	case msg := <-second.Send:
		var event Event
		require.NoError(t, json.Unmarshal(msg, &event))
		assert.Equal(t, EventOrderStatusUpdated, event.Type)
	case <-time.After(time.Second):
		t.Fatal("expected the remaining session to receive the event")
	}
}

func TestHub_BroadcastToMultipleAdmins(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	clients := []*Client{
		newTestClient(hub, 1),
		newTestClient(hub, 2),
	}
	for _, c := range clients {
		hub.Register(c)
	}
	waitForClientCount(t, hub, 2)

	hub.Broadcast(EventOrderCreated, map[string]interface{}{"order_number": "ORD-TEST0003"})

	for _, c := range clients {
		select {
		case <-c.Send:
		case <-time.After(time.Second):
			t.Fatal("expected every session to receive the event")
		}
	}
}
