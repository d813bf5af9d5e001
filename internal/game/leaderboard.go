package game

import (
	"sort"
	"strings"

	"winey/internal/models"
)

// LeaderboardEntry is one row of the final standings.
type LeaderboardEntry struct {
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
}

// Leaderboard returns active players sorted by score descending, ties broken
// by display name.
func Leaderboard(g *models.Game) []LeaderboardEntry {
	var entries []LeaderboardEntry
	for i := range g.Players {
		p := &g.Players[i]
		if p.Status != models.PlayerActive {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			PlayerID:    p.ID,
			DisplayName: p.DisplayName,
			Score:       p.Score,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return strings.ToLower(entries[i].DisplayName) < strings.ToLower(entries[j].DisplayName)
	})
	return entries
}
