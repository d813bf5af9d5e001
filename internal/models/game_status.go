package models

// Status represents the current phase of the game
type Status string

const (
	StatusSetup     Status = "setup"
	StatusLobby     Status = "lobby"
	StatusInRound   Status = "in_round"
	StatusCountdown Status = "countdown"
	StatusReveal    Status = "reveal"
	StatusGambit    Status = "gambit"
	StatusFinal     Status = "final"
)
