package render

import (
	"strings"
	"testing"

	"winey/internal/models"
)

func renderGame() *models.Game {
	return &models.Game{
		Status:       models.StatusInRound,
		CurrentRound: 1,
		Setup:        models.SetupOption{Players: 10, Bottles: 9, Rounds: 3, BottlesPerRound: 3},
		Players: []models.Player{
			{ID: "h", DisplayName: "Marla <script>", IsHost: true, Status: models.PlayerActive, Score: 2},
			{ID: "p2", DisplayName: "Quincy", Status: models.PlayerActive, Score: 5},
			{ID: "p3", DisplayName: "Gone", Status: models.PlayerKicked, Score: 9},
		},
		Bottles: []models.Bottle{
			{ID: "A", LabelName: "Chateau 01", FunName: "Mystery Red", Price: 24.5},
			{ID: "B", LabelName: "Chateau 02", Price: 18},
		},
		Rounds: []models.Round{{Index: 0, BottleIDs: []string{"A", "B"}}},
	}
}

func TestPlayerListEscapesNames(t *testing.T) {
	html := PlayerList(renderGame())
	if strings.Contains(html, "<script>") {
		t.Errorf("player name not escaped: %s", html)
	}
	if !strings.Contains(html, "Players (2/10)") {
		t.Errorf("active count missing: %s", html)
	}
	if strings.Contains(html, "Gone") {
		t.Errorf("kicked player rendered: %s", html)
	}
	if !strings.Contains(html, "host") {
		t.Errorf("host badge missing: %s", html)
	}
}

func TestLeaderboardOrdersByScore(t *testing.T) {
	html := Leaderboard(renderGame())
	if !strings.Contains(html, "leaderboard") {
		t.Fatalf("no table rendered: %s", html)
	}
	if strings.Index(html, "Quincy") > strings.Index(html, "Marla") {
		t.Errorf("higher score not listed first: %s", html)
	}

	if got := Leaderboard(&models.Game{}); got != "" {
		t.Errorf("empty game rendered a table: %s", got)
	}
}

func TestRoundBottlesHidesLabelsBeforeReveal(t *testing.T) {
	g := renderGame()
	html := RoundBottles(g)
	if strings.Contains(html, "Chateau 01") {
		t.Errorf("label leaked before reveal: %s", html)
	}
	if !strings.Contains(html, "Mystery Red") || !strings.Contains(html, "Bottle 2") {
		t.Errorf("fun name or placeholder missing: %s", html)
	}

	g.Rounds[0].Revealed = true
	html = RoundBottles(g)
	if !strings.Contains(html, "Chateau 01") || !strings.Contains(html, "24.50") {
		t.Errorf("revealed label or price missing: %s", html)
	}
}

func TestPhaseBanner(t *testing.T) {
	g := renderGame()
	if html := PhaseBanner(g); !strings.Contains(html, "Round 1 of 3") {
		t.Errorf("round banner wrong: %s", html)
	}
	g.Status = models.StatusFinal
	if html := PhaseBanner(g); !strings.Contains(html, "Final standings") {
		t.Errorf("final banner wrong: %s", html)
	}
}
