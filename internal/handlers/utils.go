package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"winey/internal/game"
	"winey/internal/models"
	"winey/internal/store"
)

// pathID extracts the game id that follows the handler's route prefix.
func pathID(r *http.Request, prefix string) string {
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// getSessionAndPlayer validates membership using the session cookies.
func (ctx *Context) getSessionAndPlayer(r *http.Request, gameID string) (*store.Session, string, error) {
	session, exists := ctx.GameStore.Get(gameID)
	if !exists {
		return nil, "", fmt.Errorf("game not found")
	}
	idCookie, err := r.Cookie("player_id")
	if err != nil {
		return nil, "", fmt.Errorf("no session")
	}
	tokenCookie, err := r.Cookie("player_token")
	if err != nil {
		return nil, "", fmt.Errorf("no session")
	}

	player := session.Game().PlayerByID(idCookie.Value)
	if player == nil {
		return nil, "", fmt.Errorf("not a member")
	}
	if !ctx.Security.ValidateToken(player, tokenCookie.Value) {
		return nil, "", fmt.Errorf("invalid token")
	}
	return session, player.ID, nil
}

// setSessionCookies stores the player's id and token on the client.
func setSessionCookies(w http.ResponseWriter, player models.Player) {
	http.SetCookie(w, &http.Cookie{
		Name:     "player_id",
		Value:    player.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "player_token",
		Value:    player.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeActionError maps engine rejections to 422 and everything else to 400.
func writeActionError(w http.ResponseWriter, err error) {
	var rej *game.Rejection
	if errors.As(err, &rej) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": rej.Reasons})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []string{err.Error()}})
}
