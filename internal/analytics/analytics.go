package analytics

import (
	"sync"
	"time"

	"winey/internal/models"
)

// Event type constants
const (
	EventGameStart     = "game_start"
	EventSubmitRound   = "submit_round"
	EventRoundReveal   = "round_reveal"
	EventGambitStart   = "gambit_start"
	EventFinalDownload = "final_download"
)

// Event is one recorded usage event.
type Event struct {
	Type      string            `json:"type"`
	GameID    string            `json:"gameId"`
	PlayerID  string            `json:"playerId,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Service collects usage events in memory. It is constructed once at startup
// and injected into the handlers; a nil *Service drops all events, so callers
// never need to guard their Track calls.
type Service struct {
	mu     sync.Mutex
	events []Event
	now    func() time.Time
}

// NewService creates an empty collector.
func NewService() *Service {
	return &Service{now: time.Now}
}

// Track records one event.
func (s *Service) Track(eventType, gameID, playerID string, metadata map[string]string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{
		Type:      eventType,
		GameID:    gameID,
		PlayerID:  playerID,
		Metadata:  metadata,
		Timestamp: s.now(),
	})
}

// Events returns a copy of the recorded events.
func (s *Service) Events() []Event {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// CountByType returns how many events of each type were recorded.
func (s *Service) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, e := range s.Events() {
		counts[e.Type]++
	}
	return counts
}

// GameMetrics summarizes engagement for a finished game.
type GameMetrics struct {
	AverageNoteLength float64     `json:"averageNoteLength"`
	ScoreDistribution map[int]int `json:"scoreDistribution"`
	SubmissionCount   int         `json:"submissionCount"`
}

// Metrics computes engagement metrics from a game record.
func Metrics(g *models.Game) GameMetrics {
	m := GameMetrics{ScoreDistribution: make(map[int]int)}

	totalLen := 0
	noteCount := 0
	for _, round := range g.Rounds {
		for _, sub := range round.Submissions {
			m.SubmissionCount++
			for _, note := range sub.TastingNotes {
				totalLen += len(note.Note)
				noteCount++
			}
		}
	}
	if noteCount > 0 {
		m.AverageNoteLength = float64(totalLen) / float64(noteCount)
	}

	for i := range g.Players {
		p := &g.Players[i]
		if p.Status == models.PlayerActive {
			m.ScoreDistribution[p.Score]++
		}
	}
	return m
}
