package sse

import (
	"log"
	"maps"
	"os"
	"time"

	"winey/internal/game"
	"winey/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("WINEY_DEBUG") != ""
}

// Hub is the per-game client registry the broadcaster works against. The
// session type in the store package implements it.
type Hub interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
	GetSSEClients() map[chan models.SSEMessage]string
	AddSSEClient(client chan models.SSEMessage, playerID string)
	RemoveSSEClient(client chan models.SSEMessage)
	SSEClientCount() int
}

// AddClient adds a new SSE client to the hub
func AddClient(hub Hub, client chan models.SSEMessage, playerID string) {
	hub.Lock()
	defer hub.Unlock()

	// Warn if the same player has multiple SSE connections
	dup := 0
	for _, pid := range hub.GetSSEClients() {
		if pid == playerID {
			dup++
		}
	}
	if dup > 0 {
		log.Printf("WARN: player %s opened %d additional SSE connection(s)", playerID, dup)
	}
	hub.AddSSEClient(client, playerID)
}

// RemoveClient removes an SSE client from the hub
func RemoveClient(hub Hub, client chan models.SSEMessage) {
	hub.Lock()
	defer hub.Unlock()
	hub.RemoveSSEClient(client)
	log.Printf("removeSSEClient: client removed, now have %d total clients", hub.SSEClientCount())
}

// Broadcast sends a message to all connected SSE clients
func Broadcast(hub Hub, event, data string) {
	hub.RLock()
	// Collect all client channels while holding the lock
	clients := hub.GetSSEClients()
	clientCount := len(clients)
	hub.RUnlock()

	if debug {
		log.Printf("broadcastSSE: event=%s to %d clients", event, clientCount)
	}

	// Send messages WITHOUT holding the lock
	msg := models.SSEMessage{Event: event, Data: data}
	successCount := 0
	for client := range clients {
		select {
		case client <- msg:
			successCount++
		case <-time.After(time.Duration(game.SSETimeoutSeconds) * time.Second):
			if debug {
				log.Printf("broadcastSSE: timeout sending to client")
			}
		}
	}
	if debug {
		log.Printf("broadcastSSE: sent to %d/%d clients successfully", successCount, clientCount)
	}
}

// BroadcastPersonalized sends personalized messages to each client
func BroadcastPersonalized(hub Hub, renderFunc func(playerID string) string, eventName string) {
	hub.RLock()
	// Collect all client channels and their player IDs while holding the lock
	clientMap := maps.Clone(hub.GetSSEClients())
	hub.RUnlock()

	// Send personalized messages WITHOUT holding the lock
	for client, playerID := range clientMap {
		data := renderFunc(playerID)
		msg := models.SSEMessage{Event: eventName, Data: data}
		select {
		case client <- msg:
			// Message sent successfully
		case <-time.After(time.Duration(game.SSETimeoutSeconds) * time.Second):
			// Timeout - skip this client to avoid blocking
		}
	}
}
