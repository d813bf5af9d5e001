package game

import "winey/internal/models"

// PriceExtremes returns the ids of the cheapest and most expensive bottles.
// Ties break on first occurrence in bottle list order; price uniqueness is
// enforced at setup finalization, not here.
func PriceExtremes(bottles []models.Bottle) (cheapest, priciest string) {
	if len(bottles) == 0 {
		return "", ""
	}
	minIdx, maxIdx := 0, 0
	for i, b := range bottles {
		if b.Price < bottles[minIdx].Price {
			minIdx = i
		}
		if b.Price > bottles[maxIdx].Price {
			maxIdx = i
		}
	}
	return bottles[minIdx].ID, bottles[maxIdx].ID
}

// ValidateGambit checks that the guesses reference existing bottles and that
// the two extreme guesses differ.
func ValidateGambit(gambit *models.Gambit, g *models.Game) []string {
	var errs []string
	if g.BottleByID(gambit.MostExpensive) == nil {
		errs = append(errs, "most expensive bottle id is invalid")
	}
	if g.BottleByID(gambit.LeastExpensive) == nil {
		errs = append(errs, "least expensive bottle id is invalid")
	}
	if gambit.MostExpensive == gambit.LeastExpensive {
		errs = append(errs, "most expensive and least expensive cannot be the same bottle")
	}
	if g.BottleByID(gambit.Favorite) == nil {
		errs = append(errs, "favorite bottle id is invalid")
	}
	return errs
}

// resolveGambits scores every recorded gambit against the true price
// extremes and credits each owner once. The favorite pick never scores.
func resolveGambits(g *models.Game) map[string]int {
	cheapest, priciest := PriceExtremes(g.Bottles)
	deltas := make(map[string]int)
	for i := range g.Gambits {
		gambit := &g.Gambits[i]
		points := 0
		if gambit.MostExpensive == priciest {
			points += ExtremeGuessPoints
		}
		if gambit.LeastExpensive == cheapest {
			points += ExtremeGuessPoints
		}
		gambit.Points = points
		if player := g.PlayerByID(gambit.PlayerID); player != nil {
			player.Score += points
			deltas[player.ID] = points
		}
	}
	return deltas
}

// FavoriteTally counts favorite votes per bottle id for the final summary.
func FavoriteTally(g *models.Game) map[string]int {
	tally := make(map[string]int)
	for _, gambit := range g.Gambits {
		if gambit.Favorite != "" {
			tally[gambit.Favorite]++
		}
	}
	return tally
}
