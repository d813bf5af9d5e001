package store

import "sync"

// GameStore manages the sessions of all running games.
type GameStore struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewGameStore creates a new game store
func NewGameStore() *GameStore {
	return &GameStore{
		sessions: make(map[string]*Session),
	}
}

// Get retrieves a session by game id
func (s *GameStore) Get(gameID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[gameID]
	return session, exists
}

// Set stores a session
func (s *GameStore) Set(gameID string, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[gameID] = session
}

// Delete removes a session
func (s *GameStore) Delete(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, gameID)
}

// Exists checks if a game id is present
func (s *GameStore) Exists(gameID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.sessions[gameID]
	return exists
}
