package game

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"winey/internal/models"
)

// WineySetups is the fixed table of valid game configurations. The host
// finalizes exactly one of these; validation checks the game against it.
var WineySetups = []models.SetupOption{
	{Players: 22, Bottles: 20, Rounds: 5, BottlesPerRound: 4},
	{Players: 20, Bottles: 20, Rounds: 5, BottlesPerRound: 4},
	{Players: 20, Bottles: 16, Rounds: 4, BottlesPerRound: 4},
	{Players: 20, Bottles: 15, Rounds: 5, BottlesPerRound: 3},
	{Players: 20, Bottles: 12, Rounds: 4, BottlesPerRound: 3},
	{Players: 20, Bottles: 12, Rounds: 3, BottlesPerRound: 4},
	{Players: 20, Bottles: 9, Rounds: 3, BottlesPerRound: 3},
	{Players: 18, Bottles: 16, Rounds: 4, BottlesPerRound: 4},
	{Players: 16, Bottles: 16, Rounds: 4, BottlesPerRound: 4},
	{Players: 16, Bottles: 15, Rounds: 5, BottlesPerRound: 3},
	{Players: 16, Bottles: 12, Rounds: 4, BottlesPerRound: 3},
	{Players: 16, Bottles: 12, Rounds: 3, BottlesPerRound: 4},
	{Players: 16, Bottles: 9, Rounds: 3, BottlesPerRound: 3},
	{Players: 14, Bottles: 12, Rounds: 4, BottlesPerRound: 3},
	{Players: 14, Bottles: 12, Rounds: 3, BottlesPerRound: 4},
	{Players: 12, Bottles: 12, Rounds: 3, BottlesPerRound: 4},
	{Players: 12, Bottles: 12, Rounds: 4, BottlesPerRound: 3},
	{Players: 12, Bottles: 9, Rounds: 3, BottlesPerRound: 3},
	{Players: 10, Bottles: 9, Rounds: 3, BottlesPerRound: 3},
}

// FindSetup returns the setup option matching the given counts.
func FindSetup(players, bottles, rounds int) (models.SetupOption, bool) {
	for _, s := range WineySetups {
		if s.Players == players && s.Bottles == bottles && s.Rounds == rounds {
			return s, true
		}
	}
	return models.SetupOption{}, false
}

// PlayerOptions returns the distinct player counts from the setup table,
// descending.
func PlayerOptions() []int {
	seen := make(map[int]bool)
	var counts []int
	for _, s := range WineySetups {
		if !seen[s.Players] {
			seen[s.Players] = true
			counts = append(counts, s.Players)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}

// BottleOptions returns the distinct bottle counts valid for a player count,
// descending.
func BottleOptions(players int) []int {
	seen := make(map[int]bool)
	var counts []int
	for _, s := range WineySetups {
		if s.Players == players && !seen[s.Bottles] {
			seen[s.Bottles] = true
			counts = append(counts, s.Bottles)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}

// RoundOptions returns the setup options for a player and bottle count,
// most rounds first.
func RoundOptions(players, bottles int) []models.SetupOption {
	var options []models.SetupOption
	for _, s := range WineySetups {
		if s.Players == players && s.Bottles == bottles {
			options = append(options, s)
		}
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Rounds > options[j].Rounds })
	return options
}

// FinalizeSetup checks the bottle set against the finalized configuration,
// shuffles the bottles deterministically (seeded by the game id) and assigns
// them to rounds. The game is mutated in place; callers pass a clone.
func FinalizeSetup(g *models.Game) error {
	if len(g.Bottles) != g.Setup.Bottles {
		return fmt.Errorf("setup requires exactly %d bottles, found %d", g.Setup.Bottles, len(g.Bottles))
	}
	if !UniqueLabels(g.Bottles) {
		return fmt.Errorf("bottle label names must be unique")
	}
	if !UniquePrices(g.Bottles) {
		return fmt.Errorf("bottle prices must be unique")
	}

	shuffleBottles(g.ID, g.Bottles)

	per := g.Setup.BottlesPerRound
	for i := range g.Bottles {
		g.Bottles[i].RoundIndex = i / per
	}
	for r := range g.Rounds {
		start := r * per
		ids := make([]string, 0, per)
		for _, b := range g.Bottles[start : start+per] {
			ids = append(ids, b.ID)
		}
		g.Rounds[r].BottleIDs = ids
	}
	return nil
}

// shuffleBottles shuffles in place with an RNG seeded from the game id, so
// the round assignment is reproducible for a given game.
func shuffleBottles(gameID string, bottles []models.Bottle) {
	h := fnv.New64a()
	h.Write([]byte(gameID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	rng.Shuffle(len(bottles), func(i, j int) {
		bottles[i], bottles[j] = bottles[j], bottles[i]
	})
}
