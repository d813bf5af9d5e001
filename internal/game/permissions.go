package game

import (
	"fmt"

	"winey/internal/models"
)

// Permission describes which role classes may request an action.
type Permission struct {
	Host      bool
	Player    bool
	Spectator bool
}

// permissions is the static role x action table. Phase-specific guards are
// layered on top in ValidateAction.
var permissions = map[models.ActionKind]Permission{
	models.ActionKickPlayer:    {Host: true},
	models.ActionRenamePlayer:  {Host: true},
	models.ActionEndGame:       {Host: true},
	models.ActionUpdateGame:    {Host: true},
	models.ActionSubmitGambit:  {Host: true, Player: true},
	models.ActionAdvanceRound:  {Host: true},
	models.ActionUndoRound:     {Host: true},
	models.ActionReopenRound:   {Host: true},
	models.ActionCloseRound:    {Host: true},
	models.ActionSubmitTasting: {Host: true, Player: true},
}

// actionKinds fixes the iteration order for AvailableActions.
var actionKinds = []models.ActionKind{
	models.ActionUpdateGame,
	models.ActionAdvanceRound,
	models.ActionSubmitTasting,
	models.ActionCloseRound,
	models.ActionUndoRound,
	models.ActionReopenRound,
	models.ActionSubmitGambit,
	models.ActionKickPlayer,
	models.ActionRenamePlayer,
	models.ActionEndGame,
}

// CanPerformAction checks the static permission table for the caller's role
// class. Unknown action kinds are not in the table and are denied here; the
// engine still treats them as a tolerated no-op at dispatch.
func CanPerformAction(kind models.ActionKind, status models.PlayerStatus, isHost bool) bool {
	perm, ok := permissions[kind]
	if !ok {
		return false
	}
	if isHost {
		return perm.Host
	}
	if status == models.PlayerActive {
		return perm.Player
	}
	return perm.Spectator
}

// ValidateAction layers phase-specific guards over the static table. A nil
// return means the action is currently legal for the caller.
func ValidateAction(kind models.ActionKind, status models.PlayerStatus, isHost bool, g *models.Game) *Rejection {
	if !CanPerformAction(kind, status, isHost) {
		return Reject(fmt.Sprintf("caller cannot perform action: %s", kind))
	}

	switch kind {
	case models.ActionSubmitTasting:
		if g.Status != models.StatusInRound && g.Status != models.StatusCountdown {
			return Reject("cannot submit tasting notes outside an open round")
		}
	case models.ActionSubmitGambit:
		if g.Status != models.StatusGambit {
			return Reject("can only submit a gambit during the gambit phase")
		}
	case models.ActionUpdateGame:
		if g.Status != models.StatusSetup {
			return Reject("can only update game configuration during setup")
		}
	case models.ActionCloseRound:
		if g.Status != models.StatusInRound {
			return Reject("can only close round during in_round phase")
		}
	case models.ActionUndoRound:
		if g.Status != models.StatusCountdown {
			return Reject("can only undo a round close during the countdown")
		}
	case models.ActionReopenRound:
		if g.Status != models.StatusInRound && g.Status != models.StatusCountdown {
			return Reject("can only reopen a submission before the round is revealed")
		}
	case models.ActionEndGame:
		if g.Status == models.StatusSetup || g.Status == models.StatusLobby {
			return Reject("cannot end game during setup or lobby phases")
		}
	case models.ActionAdvanceRound:
		switch g.Status {
		case models.StatusInRound:
			return Reject("close the round before advancing")
		case models.StatusFinal:
			return Reject("the game is over")
		}
	}

	return nil
}

// AvailableActions returns the actions that pass both the static table and
// the phase guard, in a stable order. The presentation layer uses this to
// enable or disable controls.
func AvailableActions(status models.PlayerStatus, isHost bool, g *models.Game) []models.ActionKind {
	available := make([]models.ActionKind, 0, len(actionKinds))
	for _, kind := range actionKinds {
		if ValidateAction(kind, status, isHost, g) == nil {
			available = append(available, kind)
		}
	}
	return available
}

// guardPlayerEdit applies the shared kick/rename restrictions: the target
// must exist, must not be the host, and must not hold a locked submission in
// the current round.
func guardPlayerEdit(g *models.Game, targetID string) *Rejection {
	target := g.PlayerByID(targetID)
	if target == nil {
		return NotFound("player")
	}
	if target.IsHost {
		return Reject("the host cannot be kicked or renamed")
	}
	if round := g.ActiveRound(); round != nil {
		if sub := round.SubmissionFor(targetID); sub != nil && sub.Locked {
			return Reject("player has a locked submission in the current round")
		}
	}
	return nil
}

// CanKickPlayer reports whether the host may kick the target player.
func CanKickPlayer(g *models.Game, targetID string, isHost bool) bool {
	return isHost && guardPlayerEdit(g, targetID) == nil
}

// CanRenamePlayer reports whether the host may rename the target player.
func CanRenamePlayer(g *models.Game, targetID string, isHost bool) bool {
	return isHost && guardPlayerEdit(g, targetID) == nil
}
