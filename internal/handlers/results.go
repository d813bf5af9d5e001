package handlers

import (
	"errors"
	"net/http"

	"winey/internal/analytics"
	"winey/internal/archive"
	"winey/internal/game"
	"winey/internal/models"
)

// resultsResponse is the downloadable summary of a finished game.
type resultsResponse struct {
	GameID        string                  `json:"gameId"`
	Leaderboard   []game.LeaderboardEntry `json:"leaderboard"`
	Gambits       []models.Gambit         `json:"gambits"`
	FavoriteTally map[string]int          `json:"favoriteTally"`
	Timeline      []models.TimelineStep   `json:"timeline"`
	Metrics       analytics.GameMetrics   `json:"metrics"`
}

// HandleResults serves the final summary of a finished game. Live sessions
// are preferred; once a session is gone the archive is consulted.
func (ctx *Context) HandleResults(w http.ResponseWriter, r *http.Request) {
	gameID := pathID(r, "/results/")
	if gameID == "" {
		http.Error(w, "Game id is required", http.StatusBadRequest)
		return
	}

	if session, exists := ctx.GameStore.Get(gameID); exists {
		g := session.Game()
		if g.Status != models.StatusFinal {
			http.Error(w, "Game is not finished", http.StatusConflict)
			return
		}
		ctx.Analytics.Track(analytics.EventFinalDownload, gameID, "", nil)
		writeJSON(w, http.StatusOK, resultsResponse{
			GameID:        g.ID,
			Leaderboard:   game.Leaderboard(g),
			Gambits:       g.Gambits,
			FavoriteTally: game.FavoriteTally(g),
			Timeline:      session.Timeline(),
			Metrics:       analytics.Metrics(g),
		})
		return
	}

	rec, err := ctx.Archive.GetFinishedGame(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Archive unavailable", http.StatusInternalServerError)
		return
	}
	ctx.Analytics.Track(analytics.EventFinalDownload, gameID, "", nil)
	writeJSON(w, http.StatusOK, resultsResponse{
		GameID:        rec.Game.ID,
		Leaderboard:   rec.Leaderboard,
		Gambits:       rec.Game.Gambits,
		FavoriteTally: game.FavoriteTally(rec.Game),
		Timeline:      rec.Timeline,
		Metrics:       analytics.Metrics(rec.Game),
	})
}
