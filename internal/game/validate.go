package game

import (
	"fmt"
	"strings"

	"winey/internal/models"
)

// Validators return human-readable violation strings (empty slice = valid)
// and never mutate their input.

// ValidateGame checks the structural invariants of a game against its
// finalized setup configuration.
func ValidateGame(g *models.Game) []string {
	var errs []string
	setup := g.Setup

	if len(g.Players) != setup.Players {
		errs = append(errs, fmt.Sprintf("game must have exactly %d players, found %d", setup.Players, len(g.Players)))
	}
	if len(g.Bottles) != setup.Bottles {
		errs = append(errs, fmt.Sprintf("game must have exactly %d bottles, found %d", setup.Bottles, len(g.Bottles)))
	}
	if len(g.Rounds) != setup.Rounds {
		errs = append(errs, fmt.Sprintf("game must have exactly %d rounds, found %d", setup.Rounds, len(g.Rounds)))
	}
	if g.CurrentRound < 1 || g.CurrentRound > setup.Rounds {
		errs = append(errs, fmt.Sprintf("current round must be between 1 and %d, found %d", setup.Rounds, g.CurrentRound))
	}

	ids := make(map[string]bool, len(g.Bottles))
	labels := make(map[string]bool, len(g.Bottles))
	dupID, dupLabel := false, false
	for _, b := range g.Bottles {
		if ids[b.ID] {
			dupID = true
		}
		ids[b.ID] = true
		label := strings.ToLower(b.LabelName)
		if labels[label] {
			dupLabel = true
		}
		labels[label] = true
	}
	if dupID {
		errs = append(errs, "bottles must have unique ids")
	}
	if dupLabel {
		errs = append(errs, "bottles must have unique label names")
	}

	errs = append(errs, ValidateRoundAssignments(g)...)

	return errs
}

// ValidateRoundAssignments checks that every round holds the configured
// bottle count and that the union of round assignments equals the full
// bottle set, with no bottle orphaned or assigned twice.
func ValidateRoundAssignments(g *models.Game) []string {
	var errs []string
	setup := g.Setup

	ids := make(map[string]bool, len(g.Bottles))
	for _, b := range g.Bottles {
		ids[b.ID] = true
	}

	assigned := make(map[string]int)
	for _, r := range g.Rounds {
		if len(r.BottleIDs) != setup.BottlesPerRound {
			errs = append(errs, fmt.Sprintf("round %d must have exactly %d bottles", r.Index, setup.BottlesPerRound))
		}
		for _, id := range r.BottleIDs {
			assigned[id]++
		}
	}
	orphaned := false
	duplicated := false
	for id := range ids {
		switch assigned[id] {
		case 1:
			// assigned to exactly one round
		case 0:
			orphaned = true
		default:
			duplicated = true
		}
	}
	if duplicated {
		errs = append(errs, "a bottle must not be assigned to more than one round")
	}
	if orphaned || len(assigned) != len(ids) {
		errs = append(errs, fmt.Sprintf("all %d bottles must be assigned to rounds", setup.Bottles))
	}
	return errs
}

// ValidatePlayer checks a single player record.
func ValidatePlayer(p *models.Player) []string {
	var errs []string
	if len(strings.TrimSpace(p.DisplayName)) < MinDisplayNameLen {
		errs = append(errs, fmt.Sprintf("player name must be at least %d characters long", MinDisplayNameLen))
	}
	if p.Score < 0 {
		errs = append(errs, "player score cannot be negative")
	}
	switch p.Status {
	case models.PlayerActive, models.PlayerKicked, models.PlayerSpectator:
	default:
		errs = append(errs, fmt.Sprintf("invalid player status: %s", p.Status))
	}
	return errs
}

// ValidateBottle checks a single bottle against the round bounds of the
// given setup.
func ValidateBottle(b *models.Bottle, setup models.SetupOption) []string {
	var errs []string
	if b.LabelName == "" {
		errs = append(errs, "bottle must have a label name")
	}
	if b.Price < 0 {
		errs = append(errs, "bottle price must be non-negative")
	}
	if b.RoundIndex < 0 || b.RoundIndex >= setup.Rounds {
		errs = append(errs, fmt.Sprintf("bottle round index must be between 0 and %d, found %d", setup.Rounds-1, b.RoundIndex))
	}
	return errs
}

// ValidateSubmission checks a submission against the round it targets:
// exactly one sufficiently long note per bottle, and a ranking that is a
// permutation of the round's bottle ids.
func ValidateSubmission(sub *models.Submission, round *models.Round) []string {
	var errs []string

	inRound := make(map[string]bool, len(round.BottleIDs))
	for _, id := range round.BottleIDs {
		inRound[id] = true
	}

	if len(sub.TastingNotes) != len(round.BottleIDs) {
		errs = append(errs, fmt.Sprintf("submission must have exactly %d tasting notes", len(round.BottleIDs)))
	} else {
		noted := make(map[string]bool, len(sub.TastingNotes))
		for _, note := range sub.TastingNotes {
			if !inRound[note.BottleID] || noted[note.BottleID] {
				errs = append(errs, "tasting notes must cover each bottle in the round exactly once")
				break
			}
			noted[note.BottleID] = true
		}
		for _, note := range sub.TastingNotes {
			if len(note.Note) < MinNoteLen {
				errs = append(errs, fmt.Sprintf("all tasting notes must be at least %d characters long", MinNoteLen))
				break
			}
		}
	}

	if len(sub.Ranking) != len(round.BottleIDs) {
		errs = append(errs, fmt.Sprintf("submission ranking must have exactly %d bottles", len(round.BottleIDs)))
	} else {
		seen := make(map[string]bool, len(sub.Ranking))
		for _, id := range sub.Ranking {
			if seen[id] {
				errs = append(errs, "submission ranking must not have duplicate bottles")
				break
			}
			seen[id] = true
		}
		for _, id := range sub.Ranking {
			if !inRound[id] {
				errs = append(errs, "submission ranking contains bottles not in the round")
				break
			}
		}
	}

	return errs
}

// UniquePrices reports whether no two bottles share a price.
func UniquePrices(bottles []models.Bottle) bool {
	prices := make(map[float64]bool, len(bottles))
	for _, b := range bottles {
		if prices[b.Price] {
			return false
		}
		prices[b.Price] = true
	}
	return true
}

// UniqueLabels reports whether label names are unique, case-insensitively.
func UniqueLabels(bottles []models.Bottle) bool {
	labels := make(map[string]bool, len(bottles))
	for _, b := range bottles {
		label := strings.ToLower(b.LabelName)
		if labels[label] {
			return false
		}
		labels[label] = true
	}
	return true
}
