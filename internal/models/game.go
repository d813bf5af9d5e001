package models

import (
	"time"

	"github.com/google/uuid"
)

// SetupOption is one valid game configuration the host can finalize.
type SetupOption struct {
	Players         int `json:"players"`
	Bottles         int `json:"bottles"`
	Rounds          int `json:"rounds"`
	BottlesPerRound int `json:"bottlesPerRound"`
}

// Bottle is a tasted item. LabelName is the real label (unique per game,
// case-insensitive); FunName is an optional display alias shown to players
// before the reveal.
type Bottle struct {
	ID         string  `json:"id"`
	LabelName  string  `json:"labelName"`
	FunName    string  `json:"funName,omitempty"`
	Price      float64 `json:"price"`
	RoundIndex int     `json:"roundIndex"`
}

// TastingNote is one player note about one bottle.
type TastingNote struct {
	BottleID string `json:"bottleId"`
	Note     string `json:"note"`
}

// Submission is a player's notes and ranking for one round. Once locked, its
// content is immutable; only Points is assigned at reveal time.
type Submission struct {
	PlayerID     string        `json:"playerId"`
	RoundIndex   int           `json:"roundIndex"` // 1-based, matches Game.CurrentRound
	TastingNotes []TastingNote `json:"tastingNotes"`
	Ranking      []string      `json:"ranking"`
	Locked       bool          `json:"locked"`
	Points       int           `json:"points"`
	SubmittedAt  time.Time     `json:"submittedAt"`
}

// Round is one tasting unit. BottleIDs is the canonical order being guessed;
// it is immutable once Revealed is set.
type Round struct {
	Index       int          `json:"index"`
	BottleIDs   []string     `json:"bottleIds"`
	Submissions []Submission `json:"submissions"`
	Revealed    bool         `json:"revealed"`
}

// Gambit is a player's one-time wager on the game-wide price extremes. The
// favorite pick is a preference signal only and never scores.
type Gambit struct {
	PlayerID       string `json:"playerId"`
	MostExpensive  string `json:"mostExpensive"`
	LeastExpensive string `json:"leastExpensive"`
	Favorite       string `json:"favorite"`
	Points         int    `json:"points"`
}

// Game is the canonical record of one tasting session. It is owned
// exclusively by the engine; everything else works on snapshots.
type Game struct {
	ID           string          `json:"id"`
	Status       Status          `json:"status"`
	CurrentRound int             `json:"currentRound"` // 1-based, 1..len(Rounds)
	Setup        SetupOption     `json:"setup"`
	Bottles      []Bottle        `json:"bottles"`
	Rounds       []Round         `json:"rounds"`
	Players      []Player        `json:"players"` // insertion order = join order
	Gambits      []Gambit        `json:"gambits"`
	PIN          string          `json:"-"`
	AuditLog     []AuditLogEntry `json:"auditLog"`
	HostID       string          `json:"hostId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// NewBottle creates an unassigned bottle.
func NewBottle(labelName, funName string, price float64) Bottle {
	return Bottle{
		ID:        uuid.New().String(),
		LabelName: labelName,
		FunName:   funName,
		Price:     price,
	}
}

// NewGame creates an empty game in the setup phase with the given host and
// room PIN. Rounds are created up front from the chosen setup option.
func NewGame(setup SetupOption, host Player, pin string) *Game {
	now := time.Now()
	rounds := make([]Round, setup.Rounds)
	for i := range rounds {
		rounds[i] = Round{Index: i}
	}
	return &Game{
		ID:           uuid.New().String(),
		Status:       StatusSetup,
		CurrentRound: 1,
		Setup:        setup,
		Rounds:       rounds,
		Players:      []Player{host},
		PIN:          pin,
		HostID:       host.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Clone returns a deep copy of the game. The engine mutates a clone per
// applied action and commits it wholesale, so historical snapshots handed to
// the timeline stay trustworthy.
func (g *Game) Clone() *Game {
	c := *g
	c.Bottles = append([]Bottle(nil), g.Bottles...)
	c.Players = append([]Player(nil), g.Players...)
	c.Gambits = append([]Gambit(nil), g.Gambits...)
	c.AuditLog = append([]AuditLogEntry(nil), g.AuditLog...)
	c.Rounds = make([]Round, len(g.Rounds))
	for i, r := range g.Rounds {
		cr := r
		cr.BottleIDs = append([]string(nil), r.BottleIDs...)
		cr.Submissions = make([]Submission, len(r.Submissions))
		for j, s := range r.Submissions {
			cs := s
			cs.TastingNotes = append([]TastingNote(nil), s.TastingNotes...)
			cs.Ranking = append([]string(nil), s.Ranking...)
			cr.Submissions[j] = cs
		}
		c.Rounds[i] = cr
	}
	return &c
}

// PlayerByID returns the player with the given id, or nil.
func (g *Game) PlayerByID(id string) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// BottleByID returns the bottle with the given id, or nil.
func (g *Game) BottleByID(id string) *Bottle {
	for i := range g.Bottles {
		if g.Bottles[i].ID == id {
			return &g.Bottles[i]
		}
	}
	return nil
}

// Round returns the round at the given 1-based index, or nil.
func (g *Game) Round(currentRound int) *Round {
	if currentRound < 1 || currentRound > len(g.Rounds) {
		return nil
	}
	return &g.Rounds[currentRound-1]
}

// ActiveRound returns the round the game is currently on.
func (g *Game) ActiveRound() *Round {
	return g.Round(g.CurrentRound)
}

// ActivePlayerCount counts players whose status is active.
func (g *Game) ActivePlayerCount() int {
	count := 0
	for i := range g.Players {
		if g.Players[i].Status == PlayerActive {
			count++
		}
	}
	return count
}

// SubmissionFor returns the named player's submission in the round, or nil.
func (r *Round) SubmissionFor(playerID string) *Submission {
	for i := range r.Submissions {
		if r.Submissions[i].PlayerID == playerID {
			return &r.Submissions[i]
		}
	}
	return nil
}

// GambitFor returns the named player's gambit, or nil.
func (g *Game) GambitFor(playerID string) *Gambit {
	for i := range g.Gambits {
		if g.Gambits[i].PlayerID == playerID {
			return &g.Gambits[i]
		}
	}
	return nil
}

// Scores returns a playerID -> cumulative score map.
func (g *Game) Scores() map[string]int {
	scores := make(map[string]int, len(g.Players))
	for i := range g.Players {
		scores[g.Players[i].ID] = g.Players[i].Score
	}
	return scores
}
