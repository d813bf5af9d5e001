package store

import (
	"log"
	"sync"
	"time"

	"winey/internal/game"
	"winey/internal/models"
)

// Session binds one game's engine to its runtime concerns: the serialization
// lock the engine requires, the round-close countdown and the connected SSE
// clients. Handlers go through Dispatch so the countdown is always kept in
// step with the phase.
type Session struct {
	engine    *game.Engine
	countdown *game.CountdownScheduler
	onChange  func(*models.Game)

	mu         sync.RWMutex
	sseClients map[chan models.SSEMessage]string // channel -> playerID
}

// NewSession wraps an engine. The countdown duration applies to every closed
// round in this game.
func NewSession(e *game.Engine, countdown time.Duration) *Session {
	s := &Session{engine: e}
	s.countdown = game.NewCountdownScheduler(countdown, s.expireCountdown)
	return s
}

// OnChange registers a callback invoked with the new snapshot after every
// commit that did not come through Dispatch directly, currently only the
// countdown expiry. Must be set before the first round is closed.
func (s *Session) OnChange(fn func(*models.Game)) {
	s.onChange = fn
}

// Game returns the current snapshot.
func (s *Session) Game() *models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Game()
}

// Timeline returns the recorded transition steps.
func (s *Session) Timeline() []models.TimelineStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Timeline()
}

// Join adds a player during the lobby phase.
func (s *Session) Join(displayName string) (models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Join(displayName)
}

// Dispatch applies one action and manages the countdown around it: closing a
// round arms the timer, undoing or advancing past the countdown disarms it.
// It also returns the phase the game was in when the action applied, so
// callers can attribute transitions without re-reading state outside the
// lock.
func (s *Session) Dispatch(actorID string, action models.Action) (*models.Game, models.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.engine.Game().Status
	g, err := s.engine.Apply(actorID, action)
	if err != nil {
		return g, before, err
	}

	switch action.(type) {
	case models.CloseRound:
		s.countdown.Start()
	case models.UndoRound, models.AdvanceRound, models.EndGame:
		s.countdown.Cancel()
	}
	return g, before, nil
}

// CountdownActive reports whether a round-close countdown is pending.
func (s *Session) CountdownActive() bool {
	return s.countdown.Active()
}

// expireCountdown reveals the round when the countdown runs out. The reveal
// is applied on behalf of the host. An expiry whose timer fired but lost a
// race against a manual advance, an undo, or a re-armed countdown carries an
// outdated generation and is dropped here, under the same lock Dispatch
// holds, so it can never commit a second advance.
func (s *Session) expireCountdown(gen uint64) {
	s.mu.Lock()
	if gen != s.countdown.Generation() || s.engine.Game().Status != models.StatusCountdown {
		s.mu.Unlock()
		return
	}
	g, err := s.engine.Apply(s.engine.Game().HostID, models.AdvanceRound{})
	s.mu.Unlock()

	if err != nil {
		log.Printf("countdown expiry for game %s not applied: %v", g.ID, err)
		return
	}
	if s.onChange != nil {
		s.onChange(g)
	}
}

// Lock acquires the session's write lock.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session's write lock.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// RLock acquires the session's read lock.
func (s *Session) RLock() {
	s.mu.RLock()
}

// RUnlock releases the session's read lock.
func (s *Session) RUnlock() {
	s.mu.RUnlock()
}

// GetSSEClients returns a copy of the SSE clients map (must be called with lock held)
func (s *Session) GetSSEClients() map[chan models.SSEMessage]string {
	clients := make(map[chan models.SSEMessage]string, len(s.sseClients))
	for k, v := range s.sseClients {
		clients[k] = v
	}
	return clients
}

// AddSSEClient adds a new SSE client to the session
func (s *Session) AddSSEClient(client chan models.SSEMessage, playerID string) {
	if s.sseClients == nil {
		s.sseClients = make(map[chan models.SSEMessage]string)
	}
	s.sseClients[client] = playerID
}

// RemoveSSEClient removes an SSE client from the session
func (s *Session) RemoveSSEClient(client chan models.SSEMessage) {
	delete(s.sseClients, client)
}

// SSEClientCount returns the number of connected SSE clients
func (s *Session) SSEClientCount() int {
	return len(s.sseClients)
}
