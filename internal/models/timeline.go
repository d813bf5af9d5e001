package models

import "time"

// TimelineStep is one immutable audit record of an applied action. Summaries
// are derived from the resulting game state, never from the request payload.
type TimelineStep struct {
	Seq        int            `json:"seq"`
	Timestamp  time.Time      `json:"timestamp"`
	Action     ActionKind     `json:"action"`
	Phase      Status         `json:"phase"`      // resulting phase
	RoundIndex int            `json:"roundIndex"` // 1-based round touched, 0 if none
	Scores     map[string]int `json:"scores"`     // score snapshot after the action
}

// AuditLogEntry records a security-relevant event on the game record.
type AuditLogEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Action    string            `json:"action"`
	Details   map[string]string `json:"details,omitempty"`
}
