package game

import (
	"fmt"
	"testing"

	"winey/internal/models"
)

const testNote = "plummy nose with long dusty tannins"

// newSetupEngine returns an engine wrapping a fresh game in the setup phase
// using the 10-player / 9-bottle / 3-round configuration.
func newSetupEngine(t *testing.T) *Engine {
	t.Helper()
	setup, ok := FindSetup(10, 9, 3)
	if !ok {
		t.Fatalf("expected 10/9/3 setup option")
	}
	host := models.NewPlayer("Marla", true)
	return NewEngine(models.NewGame(setup, host, "1234"))
}

func testBottles(n int) []models.Bottle {
	bottles := make([]models.Bottle, 0, n)
	for i := 0; i < n; i++ {
		bottles = append(bottles, models.NewBottle(fmt.Sprintf("Chateau %02d", i+1), "", float64(10+i*7)))
	}
	return bottles
}

func mustApply(t *testing.T, e *Engine, actorID string, action models.Action) *models.Game {
	t.Helper()
	g, err := e.Apply(actorID, action)
	if err != nil {
		t.Fatalf("apply %s: %v", action.Kind(), err)
	}
	return g
}

// engineInLobby finalizes setup with a full bottle list and advances to the
// lobby phase.
func engineInLobby(t *testing.T) *Engine {
	t.Helper()
	e := newSetupEngine(t)
	host := e.Game().HostID
	mustApply(t, e, host, models.UpdateGame{Patch: models.GamePatch{Bottles: testBottles(9)}})
	g := mustApply(t, e, host, models.AdvanceRound{})
	if g.Status != models.StatusLobby {
		t.Fatalf("expected lobby, got %s", g.Status)
	}
	return e
}

// engineInRound fills the lobby and starts the first round.
func engineInRound(t *testing.T) *Engine {
	t.Helper()
	e := engineInLobby(t)
	for i := 0; i < e.Game().Setup.Players-1; i++ {
		if _, err := e.Join(fmt.Sprintf("Guest %02d", i+1)); err != nil {
			t.Fatalf("join: %v", err)
		}
	}
	g := mustApply(t, e, e.Game().HostID, models.AdvanceRound{})
	if g.Status != models.StatusInRound || g.CurrentRound != 1 {
		t.Fatalf("expected in_round 1, got %s round %d", g.Status, g.CurrentRound)
	}
	return e
}

// notesFor builds one valid tasting note per bottle in the round.
func notesFor(round *models.Round) []models.TastingNote {
	notes := make([]models.TastingNote, 0, len(round.BottleIDs))
	for _, id := range round.BottleIDs {
		notes = append(notes, models.TastingNote{BottleID: id, Note: testNote})
	}
	return notes
}

// submitTasting locks a submission with the given ranking for the current
// round.
func submitTasting(t *testing.T, e *Engine, playerID string, ranking []string) {
	t.Helper()
	g := e.Game()
	mustApply(t, e, playerID, models.SubmitTasting{
		PlayerID:     playerID,
		RoundIndex:   g.CurrentRound,
		TastingNotes: notesFor(g.ActiveRound()),
		Ranking:      ranking,
	})
}
