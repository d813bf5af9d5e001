package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"winey/internal/analytics"
	"winey/internal/archive"
	"winey/internal/game"
	"winey/internal/models"
	"winey/internal/render"
	"winey/internal/sse"
	"winey/internal/store"
)

// actionRequest is the wire form of an engine action.
type actionRequest struct {
	Type    models.ActionKind `json:"type"`
	Payload json.RawMessage   `json:"payload"`
}

// decodeAction turns a wire request into a typed engine action. Player-scoped
// payloads default to the acting player. Unknown types decode to the
// engine's tolerated no-op.
func decodeAction(req actionRequest, actorID string) (models.Action, error) {
	payload := req.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	switch req.Type {
	case models.ActionKickPlayer:
		var p struct {
			PlayerID string `json:"playerId"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return models.KickPlayer{PlayerID: p.PlayerID}, nil

	case models.ActionRenamePlayer:
		var p struct {
			PlayerID string `json:"playerId"`
			NewName  string `json:"newName"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return models.RenamePlayer{PlayerID: p.PlayerID, NewName: p.NewName}, nil

	case models.ActionEndGame:
		return models.EndGame{}, nil

	case models.ActionUpdateGame:
		var p struct {
			Setup   *models.SetupOption `json:"setup"`
			Bottles []struct {
				LabelName string  `json:"labelName"`
				FunName   string  `json:"funName"`
				Price     float64 `json:"price"`
			} `json:"bottles"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		patch := models.GamePatch{Setup: p.Setup}
		if p.Bottles != nil {
			patch.Bottles = make([]models.Bottle, 0, len(p.Bottles))
			for _, b := range p.Bottles {
				patch.Bottles = append(patch.Bottles, models.NewBottle(b.LabelName, b.FunName, b.Price))
			}
		}
		return models.UpdateGame{Patch: patch}, nil

	case models.ActionSubmitGambit:
		var p struct {
			MostExpensive  string `json:"mostExpensive"`
			LeastExpensive string `json:"leastExpensive"`
			Favorite       string `json:"favorite"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return models.SubmitGambit{
			PlayerID:       actorID,
			MostExpensive:  p.MostExpensive,
			LeastExpensive: p.LeastExpensive,
			Favorite:       p.Favorite,
		}, nil

	case models.ActionAdvanceRound:
		return models.AdvanceRound{}, nil

	case models.ActionUndoRound:
		return models.UndoRound{}, nil

	case models.ActionReopenRound:
		var p struct {
			PlayerID string `json:"playerId"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		if p.PlayerID == "" {
			p.PlayerID = actorID
		}
		return models.ReopenRound{PlayerID: p.PlayerID}, nil

	case models.ActionCloseRound:
		return models.CloseRound{}, nil

	case models.ActionSubmitTasting:
		var p struct {
			RoundIndex   int                  `json:"roundIndex"`
			TastingNotes []models.TastingNote `json:"tastingNotes"`
			Ranking      []string             `json:"ranking"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return models.SubmitTasting{
			PlayerID:     actorID,
			RoundIndex:   p.RoundIndex,
			TastingNotes: p.TastingNotes,
			Ranking:      p.Ranking,
		}, nil
	}

	return models.UnknownAction{Raw: req.Type}, nil
}

// HandleAction applies one engine action on behalf of the authenticated
// player and broadcasts the resulting state.
func (ctx *Context) HandleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gameID := pathID(r, "/action/")
	session, playerID, err := ctx.getSessionAndPlayer(r, gameID)
	if err != nil {
		http.Error(w, "Not authorized", http.StatusForbidden)
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	action, err := decodeAction(req, playerID)
	if err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	g, before, err := session.Dispatch(playerID, action)
	if err != nil {
		writeActionError(w, err)
		return
	}

	ctx.trackTransition(g, before, action, playerID)
	ctx.broadcastState(session, g)
	if g.Status == models.StatusFinal && before != models.StatusFinal {
		ctx.archiveGame(session, g)
	}

	resp := map[string]any{
		"status":       g.Status,
		"currentRound": g.CurrentRound,
	}
	if actor := g.PlayerByID(playerID); actor != nil {
		resp["availableActions"] = game.AvailableActions(actor.Status, actor.IsHost, g)
	}
	writeJSON(w, http.StatusOK, resp)
}

// trackTransition records the analytics events tied to phase changes.
func (ctx *Context) trackTransition(g *models.Game, before models.Status, action models.Action, playerID string) {
	switch action.(type) {
	case models.SubmitTasting:
		ctx.Analytics.Track(analytics.EventSubmitRound, g.ID, playerID, map[string]string{
			"round": strconv.Itoa(g.CurrentRound),
		})
		return
	case models.AdvanceRound:
	default:
		return
	}

	switch {
	case before == models.StatusLobby && g.Status == models.StatusInRound:
		ctx.Analytics.Track(analytics.EventGameStart, g.ID, "", nil)
	case before == models.StatusCountdown && g.Status == models.StatusReveal:
		ctx.Analytics.Track(analytics.EventRoundReveal, g.ID, "", map[string]string{
			"round": strconv.Itoa(g.CurrentRound),
		})
	case before == models.StatusReveal && g.Status == models.StatusGambit:
		ctx.Analytics.Track(analytics.EventGambitStart, g.ID, "", nil)
	}
}

// broadcastState pushes the refreshed fragments to every connected client.
func (ctx *Context) broadcastState(session *store.Session, g *models.Game) {
	sse.Broadcast(session, sse.EventPhaseUpdate, render.PhaseBanner(g))
	sse.Broadcast(session, sse.EventPlayerUpdate, render.PlayerList(g))
	sse.Broadcast(session, sse.EventScoreUpdate, render.Leaderboard(g))
}

// archiveGame persists a finished game so the results outlive the in-memory
// session.
func (ctx *Context) archiveGame(session *store.Session, g *models.Game) {
	if ctx.Archive == nil {
		return
	}
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rec := archive.Record{
		Game:        g,
		Leaderboard: game.Leaderboard(g),
		Timeline:    session.Timeline(),
		FinishedAt:  g.UpdatedAt,
	}
	if err := ctx.Archive.SaveFinishedGame(saveCtx, rec); err != nil {
		log.Printf("archive game %s: %v", g.ID, err)
	}
}
