package render

import (
	"fmt"
	htmlpkg "html"
	"strconv"
	"strings"

	"winey/internal/game"
	"winey/internal/models"
)

// PlayerList generates HTML for the lobby player list
func PlayerList(g *models.Game) string {
	var b strings.Builder
	count := g.ActivePlayerCount()
	b.WriteString(`<h2>Players (`)
	b.WriteString(strconv.Itoa(count))
	b.WriteString(`/`)
	b.WriteString(strconv.Itoa(g.Setup.Players))
	b.WriteString(`)</h2><ul class="player-list">`)
	for i := range g.Players {
		p := &g.Players[i]
		if p.Status != models.PlayerActive {
			continue
		}
		name := htmlpkg.EscapeString(p.DisplayName)
		b.WriteString(`<li class="player-item"><span class="player-name">`)
		b.WriteString(name)
		b.WriteString(`</span>`)
		if p.IsHost {
			b.WriteString(`<span class="player-badge">host</span>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// Leaderboard generates HTML for the standings table
func Leaderboard(g *models.Game) string {
	entries := game.Leaderboard(g)
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<table class="leaderboard"><thead><tr><th>#</th><th>Player</th><th>Points</th></tr></thead><tbody>`)
	for i, e := range entries {
		b.WriteString(`<tr><td>`)
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(`</td><td>`)
		b.WriteString(htmlpkg.EscapeString(e.DisplayName))
		b.WriteString(`</td><td>`)
		b.WriteString(strconv.Itoa(e.Score))
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// RoundBottles generates HTML for the bottles of the current round. Before
// the reveal only the fun name (or a numbered placeholder) is shown.
func RoundBottles(g *models.Game) string {
	round := g.ActiveRound()
	if round == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<ol class="bottle-list">`)
	for i, id := range round.BottleIDs {
		bottle := g.BottleByID(id)
		if bottle == nil {
			continue
		}
		label := bottle.FunName
		if label == "" {
			label = fmt.Sprintf("Bottle %d", i+1)
		}
		if round.Revealed {
			label = bottle.LabelName
		}
		b.WriteString(`<li class="bottle-item">`)
		b.WriteString(htmlpkg.EscapeString(label))
		if round.Revealed {
			b.WriteString(` <span class="bottle-price">`)
			b.WriteString(strconv.FormatFloat(bottle.Price, 'f', 2, 64))
			b.WriteString(`</span>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ol>`)
	return b.String()
}

// PhaseBanner generates the phase headline shown above the board.
func PhaseBanner(g *models.Game) string {
	var b strings.Builder
	b.WriteString(`<div class="phase-banner" data-phase="`)
	b.WriteString(string(g.Status))
	b.WriteString(`">`)
	switch g.Status {
	case models.StatusLobby:
		b.WriteString(`Waiting for players...`)
	case models.StatusInRound:
		b.WriteString(`Round `)
		b.WriteString(strconv.Itoa(g.CurrentRound))
		b.WriteString(` of `)
		b.WriteString(strconv.Itoa(len(g.Rounds)))
	case models.StatusCountdown:
		b.WriteString(`Last call for round `)
		b.WriteString(strconv.Itoa(g.CurrentRound))
	case models.StatusReveal:
		b.WriteString(`Round `)
		b.WriteString(strconv.Itoa(g.CurrentRound))
		b.WriteString(` revealed`)
	case models.StatusGambit:
		b.WriteString(`Place your gambit`)
	case models.StatusFinal:
		b.WriteString(`Final standings`)
	default:
		b.WriteString(`Setting up`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
