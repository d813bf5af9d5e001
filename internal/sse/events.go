package sse

// SSE event type constants
const (
	EventNavRedirect   = "nav-redirect"
	EventPhaseUpdate   = "phase-update"
	EventPlayerUpdate  = "player-update"
	EventScoreUpdate   = "score-update"
	EventCountdown     = "countdown"
	EventHostChanged   = "host-changed"
	EventErrorMessage  = "error-message"
	EventGambitSummary = "gambit-summary"
)
