package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"winey/internal/game"
	"winey/internal/models"
	"winey/internal/render"
	"winey/internal/sse"
	"winey/internal/store"

	qrcode "github.com/skip2/go-qrcode"
)

// HandleCreateGame creates a new game from a setup option and makes the
// caller its host.
func (ctx *Context) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.ParseForm()
	hostName := strings.TrimSpace(r.FormValue("name"))
	if hostName == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	players, _ := strconv.Atoi(r.FormValue("players"))
	bottles, _ := strconv.Atoi(r.FormValue("bottles"))
	rounds, _ := strconv.Atoi(r.FormValue("rounds"))

	setup, ok := game.FindSetup(players, bottles, rounds)
	if !ok {
		http.Error(w, "No setup for the requested counts", http.StatusBadRequest)
		return
	}

	host := models.NewPlayer(hostName, true)
	pin := ctx.Security.GeneratePIN()
	g := models.NewGame(setup, host, pin)
	session := store.NewSession(game.NewEngine(g), ctx.Config.Countdown())
	session.OnChange(func(updated *models.Game) {
		ctx.broadcastState(session, updated)
	})
	ctx.GameStore.Set(g.ID, session)

	log.Printf("Created game: id=%s host=%s setup=%d/%d/%d", g.ID, host.ID, setup.Players, setup.Bottles, setup.Rounds)

	setSessionCookies(w, host)
	writeJSON(w, http.StatusCreated, map[string]any{
		"gameId":  g.ID,
		"pin":     pin,
		"joinUrl": ctx.Security.JoinURL(ctx.Config.BaseURL, g.ID, pin),
	})
}

// HandleJoinGame adds a player to a game during the lobby phase. The room PIN
// must match.
func (ctx *Context) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gameID := pathID(r, "/join/")
	r.ParseForm()
	playerName := strings.TrimSpace(r.FormValue("name"))
	pin := strings.TrimSpace(r.FormValue("pin"))
	if gameID == "" || playerName == "" {
		http.Error(w, "Game id and name are required", http.StatusBadRequest)
		return
	}

	session, exists := ctx.GameStore.Get(gameID)
	if !exists {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}
	if !ctx.Security.ValidatePIN(session.Game(), pin) {
		http.Error(w, "Wrong PIN", http.StatusForbidden)
		return
	}

	player, err := session.Join(playerName)
	if err != nil {
		writeActionError(w, err)
		return
	}

	log.Printf("Player joined game: id=%s playerID=%s name=%s", gameID, player.ID, playerName)

	g := session.Game()
	sse.Broadcast(session, sse.EventPlayerUpdate, render.PlayerList(g))

	setSessionCookies(w, player)
	writeJSON(w, http.StatusOK, map[string]any{
		"gameId":   gameID,
		"playerId": player.ID,
	})
}

// HandleJoinQR serves a QR code of the join URL. Only the host gets it, since
// the encoded link carries the room PIN.
func (ctx *Context) HandleJoinQR(w http.ResponseWriter, r *http.Request) {
	gameID := pathID(r, "/qr/")
	session, playerID, err := ctx.getSessionAndPlayer(r, gameID)
	if err != nil {
		http.Error(w, "Not authorized", http.StatusForbidden)
		return
	}
	g := session.Game()
	if g.HostID != playerID {
		http.Error(w, "Only the host can share the join code", http.StatusForbidden)
		return
	}

	url := ctx.Security.JoinURL(ctx.Config.BaseURL, g.ID, g.PIN)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		log.Printf("qr encode for game %s: %v", g.ID, err)
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
