package models

// SSEMessage represents a message sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "phase-update", "score-update")
	Data  string // HTML content or data to send
}
