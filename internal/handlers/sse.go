package handlers

import (
	"fmt"
	"log"
	"net/http"

	"winey/internal/game"
	"winey/internal/models"
	"winey/internal/render"
	"winey/internal/sse"
)

// HandleGameSSE handles Server-Sent Events for real-time updates
func (ctx *Context) HandleGameSSE(w http.ResponseWriter, r *http.Request) {
	gameID := pathID(r, "/sse/")

	session, playerID, err := ctx.getSessionAndPlayer(r, gameID)
	if err != nil {
		// Not authorized or game gone: tell the client to navigate home.
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventNavRedirect, "/")
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	// Immediately flush headers to establish SSE connection
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	// Create client channel
	clientChan := make(chan models.SSEMessage, game.SSEBufferSize)
	sse.AddClient(session, clientChan, playerID)
	defer sse.RemoveClient(session, clientChan)

	// Send the current state so a reconnecting client catches up immediately.
	g := session.Game()
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventPhaseUpdate, render.PhaseBanner(g))
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventPlayerUpdate, render.PlayerList(g))
	if board := render.Leaderboard(g); board != "" {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventScoreUpdate, board)
	}
	w.(http.Flusher).Flush()

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			log.Printf("handleGameSSE: client %s disconnected", playerID)
			return
		case msg := <-clientChan:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			w.(http.Flusher).Flush()
		}
	}
}
