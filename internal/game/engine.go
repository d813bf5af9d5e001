package game

import (
	"fmt"
	"strings"
	"time"

	"winey/internal/models"
)

// Engine owns the canonical game record and applies validated actions to it.
// It is single-writer by contract: callers must serialize actions per game
// before they reach Apply. Every applied action produces a fresh snapshot;
// rejected actions leave the prior snapshot untouched.
type Engine struct {
	game     *models.Game
	timeline *Timeline
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine wraps an existing game record.
func NewEngine(g *models.Game, opts ...Option) *Engine {
	e := &Engine{
		game:     g,
		timeline: NewTimeline(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Game returns the current snapshot. Snapshots are never mutated after
// commit, so callers may hold them but must treat them as read-only.
func (e *Engine) Game() *models.Game {
	return e.game
}

// Timeline returns a copy of the recorded transition steps.
func (e *Engine) Timeline() []models.TimelineStep {
	return e.timeline.Steps()
}

// Join adds a player during the lobby phase and returns the stored record
// (including the session token the caller hands back to the player).
func (e *Engine) Join(displayName string) (models.Player, error) {
	if e.game.Status != models.StatusLobby {
		return models.Player{}, Reject("players can only join during the lobby phase")
	}
	if e.game.ActivePlayerCount() >= e.game.Setup.Players {
		return models.Player{}, Reject("the game is full")
	}
	player := models.NewPlayer(displayName, false)
	if errs := ValidatePlayer(&player); len(errs) > 0 {
		return models.Player{}, &Rejection{Reasons: errs}
	}

	next := e.game.Clone()
	next.Players = append(next.Players, player)
	e.commit(next, "player_joined", map[string]string{"playerId": player.ID})
	return player, nil
}

// Apply runs one action through the full pipeline: permission and phase
// guard, per-kind mutation on a cloned snapshot, validation, commit,
// timeline append. It returns the current snapshot either way; a non-nil
// error means nothing was committed.
func (e *Engine) Apply(actorID string, action models.Action) (*models.Game, error) {
	// Forward-compatible payloads: unknown kinds are a tolerated no-op.
	if _, unknown := action.(models.UnknownAction); unknown {
		return e.game, nil
	}

	actor := e.game.PlayerByID(actorID)
	if actor == nil {
		return e.game, NotFound("player")
	}
	if rej := ValidateAction(action.Kind(), actor.Status, actor.IsHost, e.game); rej != nil {
		return e.game, rej
	}

	next := e.game.Clone()
	details := map[string]string{"actor": actorID}

	var err error
	switch a := action.(type) {
	case models.KickPlayer:
		err = applyKick(next, a, details)
	case models.RenamePlayer:
		err = applyRename(next, a, details)
	case models.EndGame:
		next.Status = models.StatusFinal
	case models.UpdateGame:
		err = applyUpdate(next, a)
	case models.SubmitGambit:
		err = applyGambit(next, a, details)
	case models.AdvanceRound:
		err = applyAdvance(next)
	case models.UndoRound:
		next.Status = models.StatusInRound
	case models.ReopenRound:
		err = applyReopen(next, a, details)
	case models.CloseRound:
		next.Status = models.StatusCountdown
	case models.SubmitTasting:
		err = applyTasting(next, a, details, e.now())
	default:
		return e.game, nil
	}
	if err != nil {
		return e.game, err
	}

	e.commit(next, string(action.Kind()), details)
	e.timeline.Append(action.Kind(), next, next.UpdatedAt)
	return e.game, nil
}

// commit stamps the clone, appends the audit entry and swaps the snapshot in.
func (e *Engine) commit(next *models.Game, auditAction string, details map[string]string) {
	next.UpdatedAt = e.now()
	next.AuditLog = append(next.AuditLog, models.AuditLogEntry{
		Timestamp: next.UpdatedAt,
		Action:    auditAction,
		Details:   details,
	})
	e.game = next
}

func applyKick(g *models.Game, a models.KickPlayer, details map[string]string) error {
	if rej := guardPlayerEdit(g, a.PlayerID); rej != nil {
		return rej
	}
	target := g.PlayerByID(a.PlayerID)
	target.Status = models.PlayerKicked
	details["target"] = a.PlayerID
	return nil
}

func applyRename(g *models.Game, a models.RenamePlayer, details map[string]string) error {
	if rej := guardPlayerEdit(g, a.PlayerID); rej != nil {
		return rej
	}
	trimmed := strings.TrimSpace(a.NewName)
	renamed := *g.PlayerByID(a.PlayerID)
	renamed.DisplayName = trimmed
	if errs := ValidatePlayer(&renamed); len(errs) > 0 {
		return &Rejection{Reasons: errs}
	}
	g.PlayerByID(a.PlayerID).DisplayName = trimmed
	details["target"] = a.PlayerID
	return nil
}

func applyUpdate(g *models.Game, a models.UpdateGame) error {
	patch := a.Patch
	if patch.Setup != nil {
		setup, ok := FindSetup(patch.Setup.Players, patch.Setup.Bottles, patch.Setup.Rounds)
		if !ok {
			return Reject("no valid setup for the requested player, bottle and round counts")
		}
		g.Setup = setup
		rounds := make([]models.Round, setup.Rounds)
		for i := range rounds {
			rounds[i] = models.Round{Index: i}
		}
		g.Rounds = rounds
	}
	if patch.Bottles != nil {
		if len(patch.Bottles) > g.Setup.Bottles {
			return Reject(fmt.Sprintf("at most %d bottles allowed", g.Setup.Bottles))
		}
		var errs []string
		for i := range patch.Bottles {
			errs = append(errs, ValidateBottle(&patch.Bottles[i], g.Setup)...)
		}
		if !UniqueLabels(patch.Bottles) {
			errs = append(errs, "bottle label names must be unique")
		}
		if len(errs) > 0 {
			return &Rejection{Reasons: errs}
		}
		g.Bottles = append([]models.Bottle(nil), patch.Bottles...)
	}
	return nil
}

func applyGambit(g *models.Game, a models.SubmitGambit, details map[string]string) error {
	player := g.PlayerByID(a.PlayerID)
	if player == nil {
		return NotFound("player")
	}
	if player.Status != models.PlayerActive {
		return Reject("only active players can submit a gambit")
	}
	if g.GambitFor(a.PlayerID) != nil {
		return Reject("gambit already submitted")
	}
	gambit := models.Gambit{
		PlayerID:       a.PlayerID,
		MostExpensive:  a.MostExpensive,
		LeastExpensive: a.LeastExpensive,
		Favorite:       a.Favorite,
	}
	if errs := ValidateGambit(&gambit, g); len(errs) > 0 {
		return &Rejection{Reasons: errs}
	}
	g.Gambits = append(g.Gambits, gambit)
	details["player"] = a.PlayerID
	return nil
}

// applyAdvance is the single forward-motion transition. Its meaning depends
// on the current phase: setup finalization, game start, round reveal, next
// round or gambit entry, and gambit resolution into the final summary.
func applyAdvance(g *models.Game) error {
	switch g.Status {
	case models.StatusSetup:
		if err := FinalizeSetup(g); err != nil {
			return Reject(err.Error())
		}
		if errs := ValidateRoundAssignments(g); len(errs) > 0 {
			return &Rejection{Reasons: errs}
		}
		g.Status = models.StatusLobby
	case models.StatusLobby:
		if errs := ValidateGame(g); len(errs) > 0 {
			return &Rejection{Reasons: errs}
		}
		g.CurrentRound = 1
		g.Status = models.StatusInRound
	case models.StatusCountdown:
		round := g.ActiveRound()
		round.Revealed = true
		scoreRevealedRound(g, round)
		g.Status = models.StatusReveal
	case models.StatusReveal:
		if g.CurrentRound < len(g.Rounds) {
			g.CurrentRound++
			g.Status = models.StatusInRound
		} else {
			g.Status = models.StatusGambit
		}
	case models.StatusGambit:
		resolveGambits(g)
		g.Status = models.StatusFinal
	}
	return nil
}

func applyReopen(g *models.Game, a models.ReopenRound, details map[string]string) error {
	round := g.ActiveRound()
	if round == nil || round.Revealed {
		return Reject("cannot reopen a submission after the round is revealed")
	}
	sub := round.SubmissionFor(a.PlayerID)
	if sub == nil {
		return NotFound("submission")
	}
	sub.Locked = false
	details["player"] = a.PlayerID
	return nil
}

func applyTasting(g *models.Game, a models.SubmitTasting, details map[string]string, at time.Time) error {
	player := g.PlayerByID(a.PlayerID)
	if player == nil {
		return NotFound("player")
	}
	if player.Status != models.PlayerActive {
		return Reject("only active players can submit tasting notes")
	}
	if a.RoundIndex != g.CurrentRound {
		return Reject("submissions are only accepted for the current round")
	}
	round := g.ActiveRound()

	sub := models.Submission{
		PlayerID:     a.PlayerID,
		RoundIndex:   a.RoundIndex,
		TastingNotes: a.TastingNotes,
		Ranking:      a.Ranking,
		Locked:       true,
		SubmittedAt:  at,
	}
	if errs := ValidateSubmission(&sub, round); len(errs) > 0 {
		return &Rejection{Reasons: errs}
	}

	if existing := round.SubmissionFor(a.PlayerID); existing != nil {
		if existing.Locked {
			return Reject("submission already locked for this round")
		}
		*existing = sub
	} else {
		round.Submissions = append(round.Submissions, sub)
	}
	details["player"] = a.PlayerID
	return nil
}
