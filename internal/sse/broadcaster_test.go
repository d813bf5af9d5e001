package sse

import (
	"sync"
	"testing"

	"winey/internal/models"
)

type fakeHub struct {
	mu      sync.RWMutex
	clients map[chan models.SSEMessage]string
}

func newFakeHub() *fakeHub {
	return &fakeHub{clients: make(map[chan models.SSEMessage]string)}
}

func (h *fakeHub) Lock()    { h.mu.Lock() }
func (h *fakeHub) Unlock()  { h.mu.Unlock() }
func (h *fakeHub) RLock()   { h.mu.RLock() }
func (h *fakeHub) RUnlock() { h.mu.RUnlock() }

func (h *fakeHub) GetSSEClients() map[chan models.SSEMessage]string {
	clients := make(map[chan models.SSEMessage]string, len(h.clients))
	for k, v := range h.clients {
		clients[k] = v
	}
	return clients
}

func (h *fakeHub) AddSSEClient(client chan models.SSEMessage, playerID string) {
	h.clients[client] = playerID
}

func (h *fakeHub) RemoveSSEClient(client chan models.SSEMessage) {
	delete(h.clients, client)
}

func (h *fakeHub) SSEClientCount() int { return len(h.clients) }

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := newFakeHub()
	c1 := make(chan models.SSEMessage, 1)
	c2 := make(chan models.SSEMessage, 1)
	AddClient(hub, c1, "p1")
	AddClient(hub, c2, "p2")

	Broadcast(hub, EventScoreUpdate, "payload")

	for _, c := range []chan models.SSEMessage{c1, c2} {
		select {
		case msg := <-c:
			if msg.Event != EventScoreUpdate || msg.Data != "payload" {
				t.Errorf("got %+v", msg)
			}
		default:
			t.Errorf("client did not receive the broadcast")
		}
	}
}

func TestBroadcastPersonalized(t *testing.T) {
	hub := newFakeHub()
	c1 := make(chan models.SSEMessage, 1)
	c2 := make(chan models.SSEMessage, 1)
	AddClient(hub, c1, "p1")
	AddClient(hub, c2, "p2")

	BroadcastPersonalized(hub, func(playerID string) string {
		return "for " + playerID
	}, EventPlayerUpdate)

	if msg := <-c1; msg.Data != "for p1" {
		t.Errorf("p1 got %q", msg.Data)
	}
	if msg := <-c2; msg.Data != "for p2" {
		t.Errorf("p2 got %q", msg.Data)
	}
}

func TestRemoveClient(t *testing.T) {
	hub := newFakeHub()
	c1 := make(chan models.SSEMessage, 1)
	AddClient(hub, c1, "p1")
	RemoveClient(hub, c1)
	if hub.SSEClientCount() != 0 {
		t.Errorf("client not removed")
	}

	// Broadcast to an empty hub is a no-op.
	Broadcast(hub, EventScoreUpdate, "payload")
}
