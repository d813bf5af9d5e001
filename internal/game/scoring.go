package game

import "winey/internal/models"

// ScoreRound awards one point per index position where the player's ranking
// agrees with the canonical order. No partial credit for near misses.
func ScoreRound(correctOrder, ranking []string) int {
	points := 0
	for i := range correctOrder {
		if i < len(ranking) && correctOrder[i] == ranking[i] {
			points++
		}
	}
	return points
}

// scoreRevealedRound computes points for every submission in the round and
// credits players who are still active. The submission keeps its computed
// points either way, so the record stays auditable after a kick. Points are
// added to cumulative scores, never assigned, so callers must score a round
// exactly once; the engine guarantees that by only scoring on the
// countdown-to-reveal transition.
func scoreRevealedRound(g *models.Game, round *models.Round) map[string]int {
	deltas := make(map[string]int)
	for i := range round.Submissions {
		sub := &round.Submissions[i]
		points := ScoreRound(round.BottleIDs, sub.Ranking)
		sub.Points = points
		player := g.PlayerByID(sub.PlayerID)
		if player != nil && player.Status == models.PlayerActive {
			player.Score += points
			deltas[player.ID] = points
		}
	}
	return deltas
}
