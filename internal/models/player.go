package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerStatus represents a player's standing in the game
type PlayerStatus string

const (
	PlayerActive    PlayerStatus = "active"
	PlayerKicked    PlayerStatus = "kicked"
	PlayerSpectator PlayerStatus = "spectator"
)

// Player represents a participant in a tasting game. A kicked player's
// recorded submissions are retained, but the player no longer counts as
// active anywhere.
type Player struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"displayName"`
	Score       int          `json:"score"`
	IsHost      bool         `json:"isHost"`
	Status      PlayerStatus `json:"status"`
	Token       string       `json:"-"`
	LastActive  time.Time    `json:"lastActive"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// NewPlayer creates an active player with a fresh id and session token.
func NewPlayer(displayName string, isHost bool) Player {
	now := time.Now()
	return Player{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		IsHost:      isHost,
		Status:      PlayerActive,
		Token:       uuid.New().String(),
		LastActive:  now,
		CreatedAt:   now,
	}
}
