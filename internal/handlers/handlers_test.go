package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"winey/internal/analytics"
	"winey/internal/config"
	"winey/internal/game"
	"winey/internal/store"
)

func testContext() *Context {
	return &Context{
		GameStore: store.NewGameStore(),
		Analytics: analytics.NewService(),
		Security:  game.NewSecurity(),
		Config: config.Config{
			BaseURL:          "http://winey.test",
			CountdownSeconds: 3600,
		},
	}
}

type client struct {
	cookies []*http.Cookie
}

func (c *client) do(t *testing.T, handler http.HandlerFunc, method, path string, form url.Values, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if form != nil {
		reader = strings.NewReader(form.Encode())
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	handler(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func createGame(t *testing.T, ctx *Context, host *client) (gameID, pin string) {
	t.Helper()
	w := host.do(t, ctx.HandleCreateGame, http.MethodPost, "/create", url.Values{
		"name":    {"Marla"},
		"players": {"10"},
		"bottles": {"9"},
		"rounds":  {"3"},
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		GameID  string `json:"gameId"`
		PIN     string `json:"pin"`
		JoinURL string `json:"joinUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !strings.HasPrefix(resp.JoinURL, "http://winey.test/join/") {
		t.Errorf("join url = %s", resp.JoinURL)
	}
	return resp.GameID, resp.PIN
}

func postAction(t *testing.T, ctx *Context, c *client, gameID, body string) *httptest.ResponseRecorder {
	t.Helper()
	return c.do(t, ctx.HandleAction, http.MethodPost, "/action/"+gameID, nil, body)
}

func TestCreateJoinAndStartFlow(t *testing.T) {
	ctx := testContext()
	host := &client{}
	gameID, pin := createGame(t, ctx, host)

	// Finalize the bottle list and open the lobby.
	var bottles []string
	for i := 0; i < 9; i++ {
		bottles = append(bottles, fmt.Sprintf(`{"labelName":"Chateau %02d","price":%d}`, i+1, 10+i*7))
	}
	body := fmt.Sprintf(`{"type":"UPDATE_GAME","payload":{"bottles":[%s]}}`, strings.Join(bottles, ","))
	if w := postAction(t, ctx, host, gameID, body); w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}
	if w := postAction(t, ctx, host, gameID, `{"type":"ADVANCE_ROUND"}`); w.Code != http.StatusOK {
		t.Fatalf("advance returned %d: %s", w.Code, w.Body.String())
	}

	// Wrong PIN is refused.
	wrongPIN := "0000"
	if pin == wrongPIN {
		wrongPIN = "1111"
	}
	guest := &client{}
	w := guest.do(t, ctx.HandleJoinGame, http.MethodPost, "/join/"+gameID, url.Values{
		"name": {"Quincy"},
		"pin":  {wrongPIN},
	}, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("wrong pin returned %d", w.Code)
	}

	// Correct PIN joins.
	w = guest.do(t, ctx.HandleJoinGame, http.MethodPost, "/join/"+gameID, url.Values{
		"name": {"Quincy"},
		"pin":  {pin},
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("join returned %d: %s", w.Code, w.Body.String())
	}

	// Guests cannot drive the game forward.
	if w := postAction(t, ctx, guest, gameID, `{"type":"ADVANCE_ROUND"}`); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("guest advance returned %d, want 422", w.Code)
	}

	// Eight more guests fill the room, then the host starts round one.
	for i := 0; i < 8; i++ {
		extra := &client{}
		w := extra.do(t, ctx.HandleJoinGame, http.MethodPost, "/join/"+gameID, url.Values{
			"name": {fmt.Sprintf("Guest %02d", i+2)},
			"pin":  {pin},
		}, "")
		if w.Code != http.StatusOK {
			t.Fatalf("join %d returned %d: %s", i, w.Code, w.Body.String())
		}
	}
	w = postAction(t, ctx, host, gameID, `{"type":"ADVANCE_ROUND"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("start returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Status       string `json:"status"`
		CurrentRound int    `json:"currentRound"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode action response: %v", err)
	}
	if resp.Status != "in_round" || resp.CurrentRound != 1 {
		t.Errorf("response = %+v, want in_round round 1", resp)
	}

	counts := ctx.Analytics.CountByType()
	if counts[analytics.EventGameStart] != 1 {
		t.Errorf("game start events = %d, want 1", counts[analytics.EventGameStart])
	}
}

func TestActionWithoutSession(t *testing.T) {
	ctx := testContext()
	host := &client{}
	gameID, _ := createGame(t, ctx, host)

	anon := &client{}
	if w := postAction(t, ctx, anon, gameID, `{"type":"ADVANCE_ROUND"}`); w.Code != http.StatusForbidden {
		t.Errorf("anonymous action returned %d, want 403", w.Code)
	}
	if w := postAction(t, ctx, host, "no-such-game", `{"type":"ADVANCE_ROUND"}`); w.Code != http.StatusForbidden {
		t.Errorf("unknown game returned %d, want 403", w.Code)
	}
}

func TestResultsBeforeFinal(t *testing.T) {
	ctx := testContext()
	host := &client{}
	gameID, _ := createGame(t, ctx, host)

	w := host.do(t, ctx.HandleResults, http.MethodGet, "/results/"+gameID, nil, "")
	if w.Code != http.StatusConflict {
		t.Errorf("results before final returned %d, want 409", w.Code)
	}
}

func TestCreateRejectsBadSetup(t *testing.T) {
	ctx := testContext()
	host := &client{}
	w := host.do(t, ctx.HandleCreateGame, http.MethodPost, "/create", url.Values{
		"name":    {"Marla"},
		"players": {"11"},
		"bottles": {"9"},
		"rounds":  {"3"},
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad setup returned %d, want 400", w.Code)
	}
}

func TestJoinQRIsHostOnly(t *testing.T) {
	ctx := testContext()
	host := &client{}
	gameID, pin := createGame(t, ctx, host)

	w := host.do(t, ctx.HandleJoinQR, http.MethodGet, "/qr/"+gameID, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("host qr returned %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %s, want image/png", ct)
	}

	// Open the lobby so a guest can exist at all.
	var bottles []string
	for i := 0; i < 9; i++ {
		bottles = append(bottles, fmt.Sprintf(`{"labelName":"Chateau %02d","price":%d}`, i+1, 10+i*7))
	}
	postAction(t, ctx, host, gameID, fmt.Sprintf(`{"type":"UPDATE_GAME","payload":{"bottles":[%s]}}`, strings.Join(bottles, ",")))
	postAction(t, ctx, host, gameID, `{"type":"ADVANCE_ROUND"}`)

	guest := &client{}
	guest.do(t, ctx.HandleJoinGame, http.MethodPost, "/join/"+gameID, url.Values{
		"name": {"Quincy"},
		"pin":  {pin},
	}, "")
	if w := guest.do(t, ctx.HandleJoinQR, http.MethodGet, "/qr/"+gameID, nil, ""); w.Code != http.StatusForbidden {
		t.Errorf("guest qr returned %d, want 403", w.Code)
	}
}
