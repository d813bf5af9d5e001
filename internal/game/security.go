package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"regexp"
	"time"

	"winey/internal/models"

	"github.com/google/uuid"
)

var joinRefPattern = regexp.MustCompile(`/join/([^#]+)#(\d{4})$`)

// Security issues and checks the lightweight credentials the game relies on:
// the 4-digit room PIN and per-player session tokens. It is constructed once
// at startup and injected wherever needed.
type Security struct{}

// NewSecurity creates the security helper.
func NewSecurity() *Security {
	return &Security{}
}

// GeneratePIN creates a random 4-digit room PIN.
func (s *Security) GeneratePIN() string {
	pin := make([]byte, PINLength)
	for i := range pin {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(PINDigits))))
		if err != nil {
			// fallback to math/rand if crypto fails
			pin[i] = PINDigits[rand.Intn(len(PINDigits))]
			continue
		}
		pin[i] = PINDigits[n.Int64()]
	}
	return string(pin)
}

// ValidatePIN checks a supplied PIN against the game's by exact equality.
func (s *Security) ValidatePIN(g *models.Game, pin string) bool {
	return g.PIN == pin
}

// GenerateToken creates a fresh player session token.
func (s *Security) GenerateToken() string {
	return uuid.New().String()
}

// ValidateToken checks a supplied token against the player's by exact
// equality.
func (s *Security) ValidateToken(p *models.Player, token string) bool {
	return token != "" && p.Token == token
}

// JoinURL builds the join reference for a game: the game id combined with
// the room PIN.
func (s *Security) JoinURL(baseURL, gameID, pin string) string {
	return baseURL + "/join/" + gameID + "#" + pin
}

// ParseJoinRef extracts the game id and PIN from a join reference.
func (s *Security) ParseJoinRef(ref string) (gameID, pin string, ok bool) {
	m := joinRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// HostReassignmentCandidate returns the id of the earliest-joined active
// non-host player, or "" when nobody qualifies.
func (s *Security) HostReassignmentCandidate(g *models.Game) string {
	candidate := ""
	var joined time.Time
	for i := range g.Players {
		p := &g.Players[i]
		if p.Status != models.PlayerActive || p.ID == g.HostID {
			continue
		}
		if candidate == "" || p.CreatedAt.Before(joined) {
			candidate = p.ID
			joined = p.CreatedAt
		}
	}
	return candidate
}
