package models

// ActionKind discriminates the engine's action protocol.
type ActionKind string

const (
	ActionKickPlayer    ActionKind = "KICK_PLAYER"
	ActionRenamePlayer  ActionKind = "RENAME_PLAYER"
	ActionEndGame       ActionKind = "END_GAME"
	ActionUpdateGame    ActionKind = "UPDATE_GAME"
	ActionSubmitGambit  ActionKind = "SUBMIT_GAMBIT"
	ActionAdvanceRound  ActionKind = "ADVANCE_ROUND"
	ActionUndoRound     ActionKind = "UNDO_ROUND"
	ActionReopenRound   ActionKind = "REOPEN_ROUND"
	ActionCloseRound    ActionKind = "CLOSE_ROUND"
	ActionSubmitTasting ActionKind = "SUBMIT_TASTING"
)

// Action is a request to mutate a game. Each kind is its own struct carrying
// only the fields that kind needs; the engine switches over the concrete
// types at the dispatch boundary.
type Action interface {
	Kind() ActionKind
}

// KickPlayer marks the target player as kicked.
type KickPlayer struct {
	PlayerID string
}

func (KickPlayer) Kind() ActionKind { return ActionKickPlayer }

// RenamePlayer changes the target player's display name.
type RenamePlayer struct {
	PlayerID string
	NewName  string
}

func (RenamePlayer) Kind() ActionKind { return ActionRenamePlayer }

// EndGame ends the game early, moving it straight to the final phase.
type EndGame struct{}

func (EndGame) Kind() ActionKind { return ActionEndGame }

// GamePatch is the partial update applied by UpdateGame. Nil fields leave the
// corresponding game state untouched.
type GamePatch struct {
	Setup   *SetupOption
	Bottles []Bottle
}

// UpdateGame patches game configuration during setup.
type UpdateGame struct {
	Patch GamePatch
}

func (UpdateGame) Kind() ActionKind { return ActionUpdateGame }

// SubmitGambit records a player's wager on the price extremes.
type SubmitGambit struct {
	PlayerID       string
	MostExpensive  string
	LeastExpensive string
	Favorite       string
}

func (SubmitGambit) Kind() ActionKind { return ActionSubmitGambit }

// AdvanceRound moves the game forward from its current phase: setup to lobby,
// lobby to the first round, countdown to reveal, reveal to the next round or
// the gambit, gambit to final.
type AdvanceRound struct{}

func (AdvanceRound) Kind() ActionKind { return ActionAdvanceRound }

// UndoRound cancels the countdown and returns to the same open round.
type UndoRound struct{}

func (UndoRound) Kind() ActionKind { return ActionUndoRound }

// ReopenRound unlocks one player's submission so they can resubmit, as long
// as the round has not been revealed.
type ReopenRound struct {
	PlayerID string
}

func (ReopenRound) Kind() ActionKind { return ActionReopenRound }

// CloseRound starts the countdown buffer before the current round is revealed.
type CloseRound struct{}

func (CloseRound) Kind() ActionKind { return ActionCloseRound }

// SubmitTasting records and locks a player's notes and ranking for a round.
type SubmitTasting struct {
	PlayerID     string
	RoundIndex   int // 1-based
	TastingNotes []TastingNote
	Ranking      []string
}

func (SubmitTasting) Kind() ActionKind { return ActionSubmitTasting }

// UnknownAction stands in for action kinds this engine version does not know.
// Applying one is a deliberate no-op so forward-compatible payloads are
// tolerated instead of rejected.
type UnknownAction struct {
	Raw ActionKind
}

func (a UnknownAction) Kind() ActionKind { return a.Raw }
